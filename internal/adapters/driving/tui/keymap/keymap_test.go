package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_HelpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Help.Keys()
	assert.Contains(t, keys, "?")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_SendBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Send.Keys()
	assert.Contains(t, keys, "enter")
}

func TestDefaultKeyMap_UpBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Up.Keys()
	assert.Contains(t, keys, "up")
	assert.Contains(t, keys, "k")
}

func TestDefaultKeyMap_DownBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Down.Keys()
	assert.Contains(t, keys, "down")
	assert.Contains(t, keys, "j")
}

func TestDefaultKeyMap_CartBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Cart.Keys()
	assert.Contains(t, keys, "ctrl+b")
}

func TestDefaultKeyMap_AddBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Add.Keys()
	assert.Contains(t, keys, "a")
}

func TestDefaultKeyMap_RetailersBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Retailers.Keys()
	assert.Contains(t, keys, "r")
}

func TestDefaultKeyMap_FiltersBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Filters.Keys()
	assert.Contains(t, keys, "tab")
}

func TestShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ShortHelp()
	assert.Len(t, bindings, 3)
}

func TestChatHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ChatHelp()
	assert.Len(t, bindings, 5)
}

func TestCartHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.CartHelp()
	assert.Len(t, bindings, 4)
}
