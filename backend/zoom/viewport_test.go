package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viewmark/viewmark/api/apitype"
)

func TestViewport_FitRatio(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		name     string
		image    apitype.Size
		viewport apitype.Size
		ratio    float64
	}{
		{name: "Wide image limited by width", image: apitype.SizeOf(2000, 500), viewport: apitype.SizeOf(1000, 1000), ratio: 0.5},
		{name: "Tall image limited by height", image: apitype.SizeOf(500, 2000), viewport: apitype.SizeOf(1000, 1000), ratio: 0.5},
		{name: "Smaller image upscales", image: apitype.SizeOf(100, 100), viewport: apitype.SizeOf(400, 300), ratio: 3.0},
		{name: "Exact fit", image: apitype.SizeOf(1000, 1000), viewport: apitype.SizeOf(1000, 1000), ratio: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewport := NewViewport(tt.image, tt.viewport)
			ratio, err := viewport.FitRatio()
			require.NoError(t, err)
			a.InDelta(tt.ratio, ratio, 1e-9)
		})
	}

	t.Run("Invalid image size", func(t *testing.T) {
		viewport := NewViewport(apitype.SizeOf(0, 100), apitype.SizeOf(100, 100))
		_, err := viewport.FitRatio()
		a.ErrorIs(err, ErrInvalidParameter)
	})
	t.Run("Invalid viewport size", func(t *testing.T) {
		viewport := NewViewport(apitype.SizeOf(100, 100), apitype.SizeOf(100, -1))
		_, err := viewport.FitRatio()
		a.ErrorIs(err, ErrInvalidParameter)
	})
}

func TestViewport_SetScrollOffset(t *testing.T) {
	a := assert.New(t)

	t.Run("Offset stored after clamping", func(t *testing.T) {
		viewport := NewViewport(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
		require.NoError(t, viewport.SetScrollOffset(apitype.PointOf(900, 200), 1.0))
		a.Equal(500.0, viewport.ScrollOffset().X())
		a.Equal(200.0, viewport.ScrollOffset().Y())
	})
	t.Run("Degenerate scale leaves offset untouched", func(t *testing.T) {
		viewport := NewViewport(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
		require.NoError(t, viewport.SetScrollOffset(apitype.PointOf(100, 100), 1.0))
		err := viewport.SetScrollOffset(apitype.PointOf(300, 300), 0)
		a.ErrorIs(err, ErrDegenerateScale)
		a.Equal(100.0, viewport.ScrollOffset().X())
	})
}

func TestViewport_Resize(t *testing.T) {
	a := assert.New(t)

	viewport := NewViewport(apitype.SizeOf(1000, 1000), apitype.SizeOf(500, 500))
	viewport.SetViewportSize(apitype.SizeOf(2000, 2000))
	ratio, err := viewport.FitRatio()
	require.NoError(t, err)
	a.Equal(2.0, ratio)
	a.Equal(apitype.SizeOf(2000, 2000), viewport.ViewportSize())
}
