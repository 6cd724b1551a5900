package apitype

import (
	"fmt"
)

// Point is a location in continuous image or view coordinates.
type Point struct {
	x float64
	y float64
}

func PointOf(x float64, y float64) Point {
	return Point{x: x, y: y}
}

func (s Point) X() float64 {
	return s.x
}

func (s Point) Y() float64 {
	return s.y
}

func (s Point) Add(other Point) Point {
	return Point{x: s.x + other.x, y: s.y + other.y}
}

func (s Point) Sub(other Point) Point {
	return Point{x: s.x - other.x, y: s.y - other.y}
}

func (s Point) Mul(factor float64) Point {
	return Point{x: s.x * factor, y: s.y * factor}
}

func (s Point) Div(divisor float64) Point {
	return Point{x: s.x / divisor, y: s.y / divisor}
}

func (s Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", s.x, s.y)
}
