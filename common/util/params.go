package util

import (
	"flag"
)

type Params struct {
	logLevel         string
	magStep          float64
	totalMagSteps    int
	rationalErrorTol float64
	databaseFile     string
	imagePath        string
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	magStep := flag.Float64("magStep", 1.1, "Ratio between adjacent zoom levels. Must be greater than 1.0")
	totalMagSteps := flag.Int("totalMagSteps", 69, "Total number of zoom levels, centered on 100 %. Should be odd")
	rationalErrorTol := flag.Float64("rationalErrorTol", 0.011, "Maximum relative error for rational zoom approximations. 0 disables them")
	databaseFile := flag.String("databaseFile", "viewmark.db", "File for marks and remembered view states")

	flag.Parse()
	imagePath := flag.Arg(0)

	return &Params{
		logLevel:         *logLevel,
		magStep:          *magStep,
		totalMagSteps:    *totalMagSteps,
		rationalErrorTol: *rationalErrorTol,
		databaseFile:     *databaseFile,
		imagePath:        imagePath,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) MagStep() float64 {
	return s.magStep
}

func (s *Params) TotalMagSteps() int {
	return s.totalMagSteps
}

func (s *Params) RationalErrorTol() float64 {
	return s.rationalErrorTol
}

func (s *Params) DatabaseFile() string {
	return s.databaseFile
}

func (s *Params) ImagePath() string {
	return s.imagePath
}
