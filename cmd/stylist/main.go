// Command stylist is a conversational personal shopping assistant for
// the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driven/catalog/memory"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driven/config/file"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driven/schedule"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/cli"
	"github.com/atelier-labs/stylist-cli/internal/core/services"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// version is overridden at build time via ldflags.
var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer configStore.Close()

	themeCh := make(chan string, 1)
	if err := configStore.Watch(func() {
		logger.Debug("Configuration reloaded from %s", configStore.Path())
		// Keep only the latest theme name queued.
		select {
		case <-themeCh:
		default:
		}
		select {
		case themeCh <- file.ResolveTheme(configStore):
		default:
		}
	}); err != nil {
		logger.Warn("Config watch unavailable: %v", err)
	}

	mode := file.ResolveMode(configStore)
	delays := file.ResolveDelays(configStore)

	catalog := memory.NewCatalogStore()
	scheduler := schedule.NewScheduler()
	session := services.NewSession(catalog, scheduler, mode, delays)

	cli.SetVersion(version)
	cli.SetCatalogStore(catalog)
	cli.SetConfigStore(configStore)
	cli.SetTUIConfig(&cli.TUIConfig{
		StylistService:  session.Stylist,
		FilterService:   session.Filters,
		CartService:     session.Cart,
		CheckoutService: session.Checkout,
		Mode:            session.Mode,
		Changed:         session.Changed(),
		Theme:           file.ResolveTheme(configStore),
		ThemeChanges:    themeCh,
	})

	return cli.Execute()
}
