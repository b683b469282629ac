// Package checkout provides the checkout view: a linear walk through
// the shipping form, the payment form, a simulated processing step
// and the order confirmation.
package checkout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/keymap"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// field pairs a form input with its display label.
type field struct {
	label string
	input textinput.Model
}

// View represents the checkout view.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	checkout driving.CheckoutService

	stage   domain.CheckoutStage
	fields  []field
	focused int
	errMsg  string
	spinner spinner.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new checkout view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	checkout driving.CheckoutService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Thinking

	return &View{
		styles:   s,
		keymap:   km,
		checkout: checkout,
		spinner:  sp,
		width:    80,
		height:   24,
	}
}

// Init initialises the checkout view.
func (v *View) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh syncs the view with the sequencer's stage, rebuilding the
// form when the stage changed underneath us. Returns a spinner tick
// command during the processing stage.
func (v *View) Refresh() tea.Cmd {
	stage := v.checkout.Stage()

	if stage != v.stage || v.fields == nil {
		v.stage = stage
		v.errMsg = ""
		v.buildFields()
	}

	if stage == domain.StageProcessing {
		return v.spinner.Tick
	}
	return nil
}

// buildFields creates the stage's text inputs.
func (v *View) buildFields() {
	var labels []string
	switch v.stage {
	case domain.StageShipping:
		labels = []string{"First name", "Last name", "Email", "Address", "City", "State", "ZIP"}
	case domain.StagePayment:
		labels = []string{"Card number", "Expiry (MM/YY)", "CVV", "Name on card"}
	default:
		v.fields = nil
		v.focused = 0
		return
	}

	v.fields = make([]field, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 32
		if label == "CVV" {
			ti.EchoMode = textinput.EchoPassword
			ti.CharLimit = 4
		}
		v.fields[i] = field{label: label, input: ti}
	}
	v.focused = 0
	v.fields[0].input.Focus()
}

// Update handles messages for the checkout view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SessionChanged:
		wasPending := v.stage == domain.StageProcessing || v.stage == domain.StageSuccess
		cmd := v.Refresh()
		if wasPending && !v.checkout.Active() && v.checkout.LastOrder() != nil {
			// The confirm timer completed the order, either before the
			// user saw the success screen or while they lingered on it.
			// Hand control back to the conversation.
			v.fields = nil
			return v, func() tea.Msg { return messages.CheckoutFinished{} }
		}
		return v, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		if v.checkout.Stage() == domain.StageProcessing {
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		v.checkout.Cancel()
		v.fields = nil
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCart}
		}
	}

	switch v.checkout.Stage() {
	case domain.StageShipping, domain.StagePayment:
		return v.handleFormKey(msg)
	case domain.StageSuccess:
		if msg.Type == tea.KeyEnter {
			return v, v.finish()
		}
	}
	return v, nil
}

// handleFormKey drives focus through the form and submits on the
// last field.
func (v *View) handleFormKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		v.focusField(v.focused + 1)
		return v, nil

	case tea.KeyShiftTab, tea.KeyUp:
		v.focusField(v.focused - 1)
		return v, nil

	case tea.KeyEnter:
		if v.focused < len(v.fields)-1 {
			v.focusField(v.focused + 1)
			return v, nil
		}
		return v, v.submitForm()
	}

	var cmd tea.Cmd
	v.fields[v.focused].input, cmd = v.fields[v.focused].input.Update(msg)
	return v, cmd
}

// focusField moves focus to the given field, wrapping at the ends.
func (v *View) focusField(index int) {
	if len(v.fields) == 0 {
		return
	}
	n := len(v.fields)
	index = ((index % n) + n) % n

	v.fields[v.focused].input.Blur()
	v.focused = index
	v.fields[v.focused].input.Focus()
}

// submitForm validates and hands the current form to the sequencer.
func (v *View) submitForm() tea.Cmd {
	for _, f := range v.fields {
		if strings.TrimSpace(f.input.Value()) == "" {
			v.errMsg = fmt.Sprintf("%s is required", f.label)
			return nil
		}
	}
	v.errMsg = ""

	var err error
	switch v.stage {
	case domain.StageShipping:
		err = v.checkout.SubmitShipping(domain.ShippingForm{
			FirstName: v.fields[0].input.Value(),
			LastName:  v.fields[1].input.Value(),
			Email:     v.fields[2].input.Value(),
			Address:   v.fields[3].input.Value(),
			City:      v.fields[4].input.Value(),
			State:     v.fields[5].input.Value(),
			Zip:       v.fields[6].input.Value(),
		})
	case domain.StagePayment:
		err = v.checkout.SubmitPayment(domain.PaymentForm{
			CardNumber: v.fields[0].input.Value(),
			Expiry:     v.fields[1].input.Value(),
			CVV:        v.fields[2].input.Value(),
			NameOnCard: v.fields[3].input.Value(),
		})
	}
	if err != nil {
		v.errMsg = err.Error()
		return nil
	}
	return v.Refresh()
}

// finish completes the order explicitly and returns to the chat.
func (v *View) finish() tea.Cmd {
	// The confirm timer may have beaten us to it; either way the
	// order is done.
	_ = v.checkout.Complete()
	v.fields = nil
	return func() tea.Msg {
		return messages.CheckoutFinished{}
	}
}

// View renders the checkout view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.fields)*2+8)
	sections = append(sections, v.styles.Title.Render("Checkout"), "")
	sections = append(sections, v.renderProgress(), "")

	switch v.checkout.Stage() {
	case domain.StageShipping, domain.StagePayment:
		sections = append(sections, v.renderForm()...)
		sections = append(sections, "", v.styles.Help.Render("tab next field • enter submit • esc cancel"))
	case domain.StageProcessing:
		sections = append(sections, v.spinner.View()+" "+v.styles.Thinking.Render("Processing your payment..."))
	case domain.StageSuccess:
		sections = append(sections, v.renderSuccess()...)
		sections = append(sections, "", v.styles.Help.Render("enter continue"))
	}

	if v.errMsg != "" {
		sections = append(sections, "", v.styles.Error.Render(v.errMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderProgress renders the stage breadcrumb.
func (v *View) renderProgress() string {
	stages := []domain.CheckoutStage{
		domain.StageShipping,
		domain.StagePayment,
		domain.StageProcessing,
		domain.StageSuccess,
	}
	current := v.checkout.Stage()

	parts := make([]string, 0, len(stages))
	for _, stage := range stages {
		label := stage.Description()
		if stage == current {
			parts = append(parts, v.styles.Selected.Render(label))
		} else {
			parts = append(parts, v.styles.Muted.Render(label))
		}
	}
	return strings.Join(parts, v.styles.Muted.Render(" › "))
}

// renderForm renders the current form fields.
func (v *View) renderForm() []string {
	lines := make([]string, 0, len(v.fields))
	for i, f := range v.fields {
		label := v.styles.Normal.Render(f.label)
		if i == v.focused {
			label = v.styles.Selected.Render(f.label)
		}
		lines = append(lines, fmt.Sprintf("%-32s %s", label, f.input.View()))
	}
	return lines
}

// renderSuccess renders the completed order summary.
func (v *View) renderSuccess() []string {
	order := v.checkout.LastOrder()
	if order == nil {
		return []string{v.styles.Success.Render("Order confirmed!")}
	}

	lines := []string{
		v.styles.Success.Render("Order confirmed!"),
		"",
		v.styles.Normal.Render("Order " + order.ID),
		"",
	}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("  %s (%s, %s) x%d",
			item.Product.Name, item.Color, item.Size, item.Quantity))
	}
	lines = append(lines, "",
		fmt.Sprintf("Total %s", v.styles.Price.Render(fmt.Sprintf("$%.2f", order.Totals.Total))),
		"",
		v.styles.Muted.Render(fmt.Sprintf("Shipping to %s %s, %s, %s %s",
			order.Shipping.FirstName, order.Shipping.LastName,
			order.Shipping.Address, order.Shipping.City, order.Shipping.Zip)))
	return lines
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Stage returns the stage the view is currently rendering.
func (v *View) Stage() domain.CheckoutStage {
	return v.stage
}
