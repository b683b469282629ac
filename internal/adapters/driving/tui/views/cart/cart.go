// Package cart provides the shopping bag view: cart lines with
// quantity controls, derived totals and the checkout entry point.
package cart

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/keymap"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// View represents the cart view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	cart     driving.CartService
	checkout driving.CheckoutService

	selected int
	errMsg   string
	width    int
	height   int
	ready    bool
}

// NewView creates a new cart view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	cart driving.CartService,
	checkout driving.CheckoutService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:   s,
		keymap:   km,
		cart:     cart,
		checkout: checkout,
		width:    80,
		height:   24,
	}
}

// Init initialises the cart view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the cart view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SessionChanged:
		v.clamp()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	items := v.cart.Items()

	switch msg.String() {
	case "esc":
		v.errMsg = ""
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewChat}
		}

	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(items)-1 {
			v.selected++
		}
		return v, nil

	case "+", "right", "l":
		if line := v.selectedLine(items); line != nil {
			v.cart.SetQuantity(line.Product.ID, line.Quantity+1, line.Size, line.Color)
		}
		return v, nil

	case "-", "left", "h":
		if line := v.selectedLine(items); line != nil {
			v.cart.SetQuantity(line.Product.ID, line.Quantity-1, line.Size, line.Color)
			v.clamp()
		}
		return v, nil

	case "x", "delete":
		if line := v.selectedLine(items); line != nil {
			v.cart.Remove(line.Product.ID, line.Size, line.Color)
			v.clamp()
		}
		return v, nil

	case "enter":
		return v, v.beginCheckout()
	}

	return v, nil
}

// selectedLine returns the highlighted cart line, or nil.
func (v *View) selectedLine(items []domain.CartItem) *domain.CartItem {
	if len(items) == 0 || v.selected < 0 || v.selected >= len(items) {
		return nil
	}
	return &items[v.selected]
}

// clamp keeps the selection inside the current line count.
func (v *View) clamp() {
	count := len(v.cart.Items())
	if v.selected >= count {
		v.selected = count - 1
	}
	if v.selected < 0 {
		v.selected = 0
	}
}

// beginCheckout starts the stage machine and switches views.
func (v *View) beginCheckout() tea.Cmd {
	if err := v.checkout.Begin(); err != nil {
		switch {
		case errors.Is(err, domain.ErrCartEmpty):
			v.errMsg = "Your bag is empty"
		case errors.Is(err, domain.ErrCheckoutDisabled):
			v.errMsg = "Checkout is disabled in catalog mode"
		default:
			v.errMsg = err.Error()
		}
		return nil
	}
	v.errMsg = ""
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewCheckout}
	}
}

// View renders the cart view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	items := v.cart.Items()

	sections := make([]string, 0, len(items)+8)
	sections = append(sections, v.styles.Title.Render("Your Bag"), "")

	if len(items) == 0 {
		sections = append(sections, v.styles.Muted.Render("Nothing here yet. Ask the stylist for ideas."))
	} else {
		for i, item := range items {
			sections = append(sections, v.renderLine(i, item))
		}
		sections = append(sections, "", v.renderTotals())
	}

	if v.errMsg != "" {
		sections = append(sections, "", v.styles.Error.Render(v.errMsg))
	}

	help := v.keymap.CartHelp()
	parts := make([]string, 0, len(help))
	for _, b := range help {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	sections = append(sections, "", v.styles.Help.Render(strings.Join(parts, " • ")))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderLine renders one cart line.
func (v *View) renderLine(index int, item domain.CartItem) string {
	lineTotal := item.Product.Price * float64(item.Quantity)
	text := fmt.Sprintf("%s  (%s, %s)  x%d  %s",
		item.Product.Name, item.Color, item.Size, item.Quantity,
		v.styles.Price.Render(fmt.Sprintf("$%.2f", lineTotal)))

	if index == v.selected {
		return v.styles.Selected.Render("> " + text)
	}
	return v.styles.Normal.Render("  " + text)
}

// renderTotals renders the derived totals block.
func (v *View) renderTotals() string {
	totals := v.cart.Totals()

	shipping := fmt.Sprintf("$%.2f", totals.Shipping)
	if totals.Shipping == 0 {
		shipping = "Free"
	}

	lines := []string{
		fmt.Sprintf("Subtotal  %s", v.styles.Price.Render(fmt.Sprintf("$%.2f", totals.Subtotal))),
		fmt.Sprintf("Tax       %s", v.styles.Price.Render(fmt.Sprintf("$%.2f", totals.Tax))),
		fmt.Sprintf("Shipping  %s", v.styles.Price.Render(shipping)),
		fmt.Sprintf("Total     %s", v.styles.Price.Render(fmt.Sprintf("$%.2f", totals.Total))),
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the highlighted line index.
func (v *View) Selected() int {
	return v.selected
}
