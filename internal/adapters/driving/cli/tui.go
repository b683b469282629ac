package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	StylistService  driving.StylistService
	FilterService   driving.FilterService
	CartService     driving.CartService
	CheckoutService driving.CheckoutService
	Mode            domain.StoreMode
	Changed         <-chan struct{}
	Theme           string
	ThemeChanges    <-chan string
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive styling session",
	Long: `Launch the interactive terminal user interface for Stylist.

The TUI provides a conversational interface for discovering pieces,
refining budget, colour and size, and checking out, with keyboard
navigation throughout.

Controls:
  Enter    - Send a message / select
  Tab      - Switch between typing and browsing
  1-9      - Answer the stylist's current question
  ↑/k, ↓/j - Navigate products
  a        - Add to bag
  ctrl+b   - Open your bag
  Esc      - Back / Cancel
  ctrl+c   - Quit`,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the tui requires an interactive terminal")
	}

	// Build ports from configuration
	ports := &tui.Ports{}

	if tuiConfig != nil {
		ports.Stylist = tuiConfig.StylistService
		ports.Filters = tuiConfig.FilterService
		ports.Cart = tuiConfig.CartService
		ports.Checkout = tuiConfig.CheckoutService
		ports.Mode = tuiConfig.Mode
		ports.Changed = tuiConfig.Changed
		ports.Theme = tuiConfig.Theme
		ports.ThemeChanges = tuiConfig.ThemeChanges
	}

	// Create the TUI app
	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Set up context from command
	app.WithContext(cmd.Context())

	// Create and run the bubbletea program
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
