package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	s := styles.DefaultStyles()
	bar := NewBar(s, nil)

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, 0, bar.CartCount())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_SetState(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetState(StateThinking)

	assert.Equal(t, StateThinking, bar.State())
}

func TestBar_SetMessage(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetMessage("Added Silk Wrap Dress")

	assert.Equal(t, "Added Silk Wrap Dress", bar.Message())
}

func TestBar_SetCartCount(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetCartCount(3)

	assert.Equal(t, 3, bar.CartCount())
}

func TestBar_View_Ready(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(100)

	view := bar.View()

	assert.Contains(t, view, "Ready")
}

func TestBar_View_Thinking(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(100)
	bar.SetState(StateThinking)

	view := bar.View()

	assert.Contains(t, view, "Styling...")
}

func TestBar_View_Error(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(100)
	bar.SetState(StateError)
	bar.SetMessage("One moment, still styling...")

	view := bar.View()

	assert.Contains(t, view, "One moment")
}

func TestBar_View_CartCount(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(100)
	bar.SetCartCount(2)

	view := bar.View()

	assert.Contains(t, view, "Cart: 2")
}

func TestBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("oops")

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
}

func TestBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}
