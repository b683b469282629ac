package file

import (
	"os"
	"time"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// Configuration keys.
const (
	KeyMode  = "mode"
	KeyTheme = "theme"

	KeyDelayStep       = "delays.step"
	KeyDelaySettle     = "delays.settle"
	KeyDelayEmit       = "delays.emit"
	KeyDelayAdvance    = "delays.advance"
	KeyDelayProcessing = "delays.processing"
	KeyDelayConfirm    = "delays.confirm"
)

// EnvMode overrides the configured store mode when set.
const EnvMode = "STYLIST_MODE"

// ResolveMode returns the store mode: the STYLIST_MODE environment
// variable wins over the config file, and anything unrecognised falls
// back to full mode.
func ResolveMode(store driven.ConfigStore) domain.StoreMode {
	if env := os.Getenv(EnvMode); env != "" {
		mode := domain.StoreMode(env)
		if mode.IsValid() {
			return mode
		}
		logger.Warn("Ignoring invalid %s value %q", EnvMode, env)
	}

	if configured := store.GetString(KeyMode); configured != "" {
		mode := domain.StoreMode(configured)
		if mode.IsValid() {
			return mode
		}
		logger.Warn("Ignoring invalid configured mode %q", configured)
	}

	return domain.ModeFull
}

// ResolveTheme returns the configured theme name, or the empty string
// when none is set. The TUI maps unknown names to its default theme.
func ResolveTheme(store driven.ConfigStore) string {
	return store.GetString(KeyTheme)
}

// ResolveDelays returns the timing profile, with per-key overrides
// from the config file in milliseconds. Zero and negative values are
// ignored so a sparse config only overrides what it names.
func ResolveDelays(store driven.ConfigStore) domain.Delays {
	delays := domain.DefaultDelays()

	override := func(key string, dst *time.Duration) {
		if ms := store.GetInt(key); ms > 0 {
			*dst = time.Duration(ms) * time.Millisecond
		}
	}

	override(KeyDelayStep, &delays.Step)
	override(KeyDelaySettle, &delays.Settle)
	override(KeyDelayEmit, &delays.Emit)
	override(KeyDelayAdvance, &delays.Advance)
	override(KeyDelayProcessing, &delays.Processing)
	override(KeyDelayConfirm, &delays.Confirm)

	return delays
}
