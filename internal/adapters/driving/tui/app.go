package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/keymap"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/views/cart"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/views/chat"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/views/checkout"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/views/home"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the key bindings.
	keymap *keymap.KeyMap

	// homeView is the landing view with the canned suggestions.
	homeView *home.View

	// chatView is the conversation and product browsing view.
	chatView *chat.View

	// cartView is the shopping bag view.
	cartView *cart.View

	// checkoutView is the checkout stage machine view.
	checkoutView *checkout.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.NewStyles(styles.ThemeByName(ports.Theme))
	km := keymap.DefaultKeyMap()

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		homeView:     home.NewView(s),
		chatView:     chat.NewView(s, km, ports.Stylist, ports.Filters, ports.Cart, ports.Mode),
		cartView:     cart.NewView(s, km, ports.Cart, ports.Checkout),
		checkoutView: checkout.NewView(s, km, ports.Checkout),
		currentView:  messages.ViewHome,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("stylist - Personal Shopping Assistant"),
		a.chatView.Init(),
		a.waitForChange(),
		a.waitForTheme(),
	)
}

// waitForChange blocks on the engine's change channel and converts
// each signal into a SessionChanged message. Re-armed after every
// delivery so timer-driven state (thinking steps, bucket swaps,
// checkout processing) repaints without user input.
func (a *App) waitForChange() tea.Cmd {
	ch := a.ports.Changed
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return messages.SessionChanged{}
	}
}

// waitForTheme blocks on the config watcher's theme channel and turns
// each delivery into a ThemeChanged message. Re-armed after every
// delivery, like waitForChange.
func (a *App) waitForTheme() tea.Cmd {
	ch := a.ports.ThemeChanges
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		name, ok := <-ch
		if !ok {
			return nil
		}
		return messages.ThemeChanged{Name: name}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		// Forward to all views for proper sizing
		a.homeView.SetDimensions(msg.Width, msg.Height)
		a.chatView.SetDimensions(msg.Width, msg.Height)
		a.cartView.SetDimensions(msg.Width, msg.Height)
		a.checkoutView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewHome:
			a.homeView, cmd = a.homeView.Update(msg)
			return a, cmd

		case messages.ViewChat:
			a.chatView, cmd = a.chatView.Update(msg)
			return a, cmd

		case messages.ViewCart:
			a.cartView, cmd = a.cartView.Update(msg)
			return a, cmd

		case messages.ViewCheckout:
			a.checkoutView, cmd = a.checkoutView.Update(msg)
			return a, cmd

		case messages.ViewHelp:
			// Esc from help goes home
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewHome
				return a, nil
			}
			return a, nil
		}
		return a, nil

	case messages.SessionChanged:
		// Every view mirrors engine state; keep them all in sync and
		// re-arm the listener.
		cmds := make([]tea.Cmd, 0, 4)
		a.chatView, cmd = a.chatView.Update(msg)
		cmds = append(cmds, cmd)
		a.cartView, cmd = a.cartView.Update(msg)
		cmds = append(cmds, cmd)
		a.checkoutView, cmd = a.checkoutView.Update(msg)
		cmds = append(cmds, cmd)
		cmds = append(cmds, a.waitForChange())
		return a, tea.Batch(cmds...)

	case messages.ThemeChanged:
		// Views share this Styles value, so rebuilding it in place
		// restyles every view on the next render.
		*a.styles = *styles.NewStyles(styles.ThemeByName(msg.Name))
		return a, a.waitForTheme()

	case messages.SuggestionPicked:
		a.currentView = messages.ViewChat
		return a, a.chatView.Submit(msg.Text)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewChat:
			return a, a.chatView.Refresh()
		case messages.ViewCheckout:
			return a, a.checkoutView.Refresh()
		case messages.ViewHome, messages.ViewCart, messages.ViewHelp:
			// Other views don't need special initialisation
		}
		return a, nil

	case messages.ProductAdded:
		// Status feedback is handled inside the chat view.
		return a, nil

	case messages.CheckoutFinished:
		a.currentView = messages.ViewChat
		return a, a.chatView.Refresh()
	}

	// Forward other messages (spinner ticks, input blinks) to the
	// active view.
	switch a.currentView {
	case messages.ViewHome:
		a.homeView, cmd = a.homeView.Update(msg)
	case messages.ViewChat:
		a.chatView, cmd = a.chatView.Update(msg)
	case messages.ViewCart:
		a.cartView, cmd = a.cartView.Update(msg)
	case messages.ViewCheckout:
		a.checkoutView, cmd = a.checkoutView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHome:
		return a.homeView.View()
	case messages.ViewChat:
		return a.chatView.View()
	case messages.ViewCart:
		return a.cartView.View()
	case messages.ViewCheckout:
		return a.checkoutView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.homeView.View()
	}
}

// viewHelp renders the static help screen.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")

	lines := []string{
		"enter       send a message / select",
		"tab         switch between input and products",
		"1-9         answer the stylist's current question",
		"↑/k ↓/j     move through products",
		"←/h →/l     change colour on the selected piece",
		"s           change size on the selected piece",
		"a           add the selected piece to your bag",
		"r           show retailers for the selected piece",
		"ctrl+b      open your bag",
		"esc         go back",
		"ctrl+c      quit",
	}
	for _, line := range lines {
		b.WriteString(a.styles.Normal.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("esc to go back"))
	return b.String()
}

// CurrentView returns the active view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.homeView.SetDimensions(width, height)
	a.chatView.SetDimensions(width, height)
	a.cartView.SetDimensions(width, height)
	a.checkoutView.SetDimensions(width, height)
}

// Width returns the terminal width.
func (a *App) Width() int {
	return a.width
}

// Height returns the terminal height.
func (a *App) Height() int {
	return a.height
}
