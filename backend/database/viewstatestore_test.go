package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStateStore_GetViewState(t *testing.T) {
	a := assert.New(t)
	store := NewViewStateStore(initTestDatabase(t))

	t.Run("Missing state is nil, not an error", func(t *testing.T) {
		state, err := store.GetViewState("unseen.png")
		require.NoError(t, err)
		a.Nil(state)
	})
	t.Run("Saved state comes back", func(t *testing.T) {
		require.NoError(t, store.SaveViewState(&ViewState{
			ImagePath: "image.png",
			ZoomIndex: 40,
			ScrollX:   12.5,
			ScrollY:   80,
		}))

		state, err := store.GetViewState("image.png")
		require.NoError(t, err)
		require.NotNil(t, state)
		a.Equal(40, state.ZoomIndex)
		a.Equal(12.5, state.ScrollX)
		a.Equal(80.0, state.ScrollY)
		a.False(state.UpdatedTime.IsZero())
	})
}

func TestViewStateStore_SaveViewState(t *testing.T) {
	a := assert.New(t)
	store := NewViewStateStore(initTestDatabase(t))

	require.NoError(t, store.SaveViewState(&ViewState{
		ImagePath: "image.png",
		ZoomIndex: 34,
	}))
	require.NoError(t, store.SaveViewState(&ViewState{
		ImagePath: "image.png",
		ZoomIndex: 20,
		ScrollX:   5,
	}))

	state, err := store.GetViewState("image.png")
	require.NoError(t, err)
	require.NotNil(t, state)
	a.Equal(20, state.ZoomIndex)
	a.Equal(5.0, state.ScrollX)
}
