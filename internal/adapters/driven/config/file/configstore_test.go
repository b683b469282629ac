package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_EmptyOnFirstRun(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("anything"))
	assert.Equal(t, 0, store.GetInt("anything"))
	assert.False(t, store.GetBool("anything"))
}

func TestConfigStore_SetPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("mode", "catalog"))

	// A fresh store over the same directory sees the value.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "catalog", reopened.GetString("mode"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("theme", "noir"))
	require.NoError(t, store.Set("delays.step", 250))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "noir", store.GetString("theme"))
	assert.Equal(t, 250, store.GetInt("delays.step"))
	assert.True(t, store.GetBool("verbose"))

	// Wrong-type reads fall back to zero values.
	assert.Equal(t, "", store.GetString("delays.step"))
	assert.Equal(t, 0, store.GetInt("theme"))
	assert.False(t, store.GetBool("theme"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	config := "mode = \"full\"\n\n[delays]\nstep = 100\nadvance = 200\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(config), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "full", store.GetString("mode"))
	assert.Equal(t, 100, store.GetInt("delays.step"))
	assert.Equal(t, 200, store.GetInt("delays.advance"))
}

func TestConfigStore_DottedKeysRoundTripAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("delays.step", 150))
	require.NoError(t, store.Set("delays.emit", 75))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 150, reopened.GetInt("delays.step"))
	assert.Equal(t, 75, reopened.GetInt("delays.emit"))
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_WatchReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("theme", "noir"))

	changed := make(chan struct{}, 1)
	require.NoError(t, store.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))
	defer store.Close()

	require.NoError(t, os.WriteFile(store.Path(), []byte("theme = \"blanc\"\n"), 0600))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watch callback did not fire")
	}
	assert.Equal(t, "blanc", store.GetString("theme"))
}

func TestConfigStore_CloseWithoutWatchIsNoOp(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
}
