package apitype

// Size is a pixel dimension pair for images and viewports.
type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width: width, height: height}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

// Scaled returns the size after applying a zoom ratio, truncated to
// whole pixels.
func (s Size) Scaled(zoom float64) Size {
	return Size{
		width:  int(float64(s.width) * zoom),
		height: int(float64(s.height) * zoom),
	}
}
