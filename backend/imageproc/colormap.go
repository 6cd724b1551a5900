package imageproc

// Viridis lookup table, interpolated from anchor colors sampled every
// 16 levels. Close enough to the reference map for visualization while
// keeping the table source readable.
var viridisAnchors = [17][3]uint8{
	{68, 1, 84},
	{71, 24, 106},
	{69, 46, 124},
	{65, 68, 135},
	{57, 86, 140},
	{49, 103, 142},
	{42, 119, 142},
	{35, 136, 142},
	{32, 146, 140},
	{31, 161, 136},
	{41, 175, 127},
	{59, 187, 117},
	{86, 198, 103},
	{117, 208, 84},
	{149, 216, 64},
	{184, 222, 41},
	{253, 231, 37},
}

var viridis [256][3]uint8

func init() {
	for i := 0; i < 256; i++ {
		anchor := i / 16
		if anchor >= len(viridisAnchors)-1 {
			viridis[i] = viridisAnchors[len(viridisAnchors)-1]
			continue
		}
		from := viridisAnchors[anchor]
		to := viridisAnchors[anchor+1]
		fraction := float64(i%16) / 16.0
		for c := 0; c < 3; c++ {
			viridis[i][c] = uint8(float64(from[c]) + (float64(to[c])-float64(from[c]))*fraction + 0.5)
		}
	}
	// Pin the exact endpoints.
	viridis[0] = viridisAnchors[0]
	viridis[255] = viridisAnchors[16]
}
