// Package chat provides the conversation and product browsing view.
// It renders the transcript, the staged thinking steps, the guided
// filter prompt and the filtered product list.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/components/input"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/components/list"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/components/status"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/keymap"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
)

// priceBracket is a preset range offered by the budget prompt.
type priceBracket struct {
	label    string
	min, max float64
}

// priceBrackets are the selectable budget presets.
func priceBrackets() []priceBracket {
	return []priceBracket{
		{label: "Under $100", min: 0, max: 100},
		{label: "$100 - $300", min: 100, max: 300},
		{label: "$300 and up", min: 300, max: domain.DefaultPriceMax},
	}
}

// View represents the chat view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ChatInput
	list      *list.ProductList
	statusbar *status.Bar
	spinner   spinner.Model

	stylist driving.StylistService
	filters driving.FilterService
	cart    driving.CartService
	mode    domain.StoreMode

	width      int
	height     int
	ready      bool
	focusInput bool
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	stylist driving.StylistService,
	filters driving.FilterService,
	cart driving.CartService,
	mode domain.StoreMode,
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

	productList := list.NewProductList(s)
	productList.SetShowRetailers(mode == domain.ModeCatalog)

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewChatInput(s),
		list:       productList,
		statusbar:  status.NewBar(s, km),
		spinner:    sp,
		stylist:    stylist,
		filters:    filters,
		cart:       cart,
		mode:       mode,
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// Init initialises the chat view.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.Refresh())
}

// Refresh re-reads engine state into the view. Returns a spinner tick
// command while a turn is in flight.
func (v *View) Refresh() tea.Cmd {
	v.list.SetProducts(v.filters.Visible())
	v.statusbar.SetCartCount(v.cart.Count())

	if v.stylist.Turning() {
		v.statusbar.SetState(status.StateThinking)
		return v.spinner.Tick
	}
	if v.statusbar.State() == status.StateThinking {
		v.statusbar.SetState(status.StateBrowsing)
	}
	return nil
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SessionChanged:
		return v, v.Refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		if v.stylist.Turning() {
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHome}
		}
	}

	if msg.String() == "ctrl+b" {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCart}
		}
	}

	if msg.Type == tea.KeyTab {
		v.focusInput = !v.focusInput
		if v.focusInput {
			v.list.SetProducts(v.filters.Visible())
			return v, v.input.Focus()
		}
		v.input.Blur()
		v.statusbar.SetState(status.StateBrowsing)
		return v, nil
	}

	if v.focusInput {
		return v.handleInputKey(msg)
	}
	return v.handleBrowseKey(msg)
}

// handleInputKey processes keys while typing an utterance.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return v, v.submit()
	}

	// Digits select prompt options even while the input is focused,
	// as long as nothing has been typed yet.
	if v.input.Value() == "" {
		if cmd, handled := v.handlePromptDigit(msg); handled {
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleBrowseKey processes keys while navigating products.
func (v *View) handleBrowseKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if cmd, handled := v.handlePromptDigit(msg); handled {
		return v, cmd
	}

	switch msg.String() {
	case "a":
		return v, v.addSelected()
	case "r":
		v.list.SetShowRetailers(!v.list.ShowRetailers())
		return v, nil
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// handlePromptDigit applies a numbered prompt option. Returns handled
// false when the key is not a digit or no prompt is active.
func (v *View) handlePromptDigit(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return nil, false
	}
	prompt := v.stylist.ActivePrompt()
	if prompt == nil {
		return nil, false
	}

	choice := int(key[0] - '1')

	switch prompt.Kind {
	case domain.PromptPrice:
		brackets := priceBrackets()
		if choice >= len(brackets) {
			return nil, true
		}
		b := brackets[choice]
		v.filters.SelectPriceRange(b.min, b.max)
	case domain.PromptColor:
		if choice >= len(prompt.Options) {
			return nil, true
		}
		v.filters.ToggleColor(prompt.Options[choice])
	case domain.PromptSize:
		if choice >= len(prompt.Options) {
			return nil, true
		}
		v.filters.ToggleSize(prompt.Options[choice])
	default:
		return nil, false
	}

	return v.Refresh(), true
}

// submit sends the typed utterance to the engine.
func (v *View) submit() tea.Cmd {
	utterance := v.input.Value()
	if err := v.stylist.SubmitUtterance(utterance); err != nil {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(errorMessage(err))
		return nil
	}
	v.input.Reset()
	v.statusbar.SetState(status.StateThinking)
	v.statusbar.SetMessage("")
	return v.spinner.Tick
}

// Submit sends an utterance directly, used when the home view hands
// over a picked suggestion.
func (v *View) Submit(utterance string) tea.Cmd {
	v.input.SetValue(utterance)
	return v.submit()
}

// addSelected puts the highlighted variant in the cart.
func (v *View) addSelected() tea.Cmd {
	if v.mode == domain.ModeCatalog {
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage("Cart is disabled in catalog mode; press r for retailers")
		return nil
	}

	product, color, size := v.list.SelectedVariant()
	if product == nil {
		return nil
	}
	v.cart.Add(*product, size, color)
	v.statusbar.SetState(status.StateBrowsing)
	v.statusbar.SetCartCount(v.cart.Count())
	v.statusbar.SetMessage(fmt.Sprintf("Added %s (%s, %s)", product.Name, color, size))

	name := product.Name
	return func() tea.Msg {
		return messages.ProductAdded{Name: name}
	}
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)

	sections = append(sections, v.styles.Title.Render("Stylist"), "")
	sections = append(sections, v.renderTranscript())

	if steps := v.stylist.ThinkingSteps(); len(steps) > 0 {
		sections = append(sections, v.renderThinking(steps))
	}

	if responses := v.stylist.FilterResponses(); len(responses) > 0 {
		sections = append(sections, v.renderResponses(responses))
	}

	if prompt := v.stylist.ActivePrompt(); prompt != nil {
		sections = append(sections, "", v.renderPrompt(prompt))
	}

	sections = append(sections, "", v.list.View())
	sections = append(sections, "", v.input.View())
	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTranscript renders the last few conversation messages.
func (v *View) renderTranscript() string {
	msgs := v.stylist.Messages()

	// Keep the transcript to the most recent exchanges.
	const maxShown = 6
	if len(msgs) > maxShown {
		msgs = msgs[len(msgs)-maxShown:]
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case domain.RoleUser:
			lines = append(lines, v.styles.UserMessage.Render("You: "+m.Content))
		case domain.RoleAssistant:
			lines = append(lines, v.styles.AssistantMessage.Render("Stylist: "+m.Content))
		}
	}
	return strings.Join(lines, "\n\n")
}

// renderThinking renders the staged thinking steps.
func (v *View) renderThinking(steps []domain.ThinkingStep) string {
	lines := make([]string, 0, len(steps)+1)
	lines = append(lines, "")
	for _, step := range steps {
		marker := v.styles.Success.Render("✓")
		if step.Status == domain.StepThinking {
			marker = v.spinner.View()
		}
		lines = append(lines, "  "+marker+" "+v.styles.Thinking.Render(step.Step))
	}
	return strings.Join(lines, "\n")
}

// renderResponses renders the filter confirmations for this turn.
func (v *View) renderResponses(responses []string) string {
	lines := make([]string, 0, len(responses)+1)
	lines = append(lines, "")
	for _, r := range responses {
		lines = append(lines, v.styles.AssistantMessage.Render("Stylist: "+r))
	}
	return strings.Join(lines, "\n")
}

// renderPrompt renders the active filter prompt with numbered options.
func (v *View) renderPrompt(prompt *domain.FilterPrompt) string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(prompt.Label))
	b.WriteString("\n")

	var options []string
	if prompt.Kind == domain.PromptPrice {
		for _, bracket := range priceBrackets() {
			options = append(options, bracket.label)
		}
	} else {
		options = prompt.Options
	}

	selected := v.selectedOptions(prompt.Kind)
	parts := make([]string, 0, len(options))
	for i, option := range options {
		label := fmt.Sprintf("[%d] %s", i+1, option)
		if selected[option] {
			parts = append(parts, v.styles.Selected.Render(label))
		} else {
			parts = append(parts, v.styles.Normal.Render(label))
		}
	}
	b.WriteString("  " + strings.Join(parts, "  "))
	return b.String()
}

// selectedOptions reports which prompt options are currently active
// in the filter state.
func (v *View) selectedOptions(kind domain.PromptKind) map[string]bool {
	selected := make(map[string]bool)
	filters := v.filters.Filters()
	switch kind {
	case domain.PromptColor:
		for _, c := range filters.Colors {
			selected[c] = true
		}
	case domain.PromptSize:
		for _, s := range filters.Sizes {
			selected[s] = true
		}
	case domain.PromptPrice:
		for _, bracket := range priceBrackets() {
			if filters.PriceRange.Min == bracket.min && filters.PriceRange.Max == bracket.max {
				selected[bracket.label] = true
			}
		}
	}
	return selected
}

// errorMessage maps engine errors to user-facing copy.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyUtterance):
		return "Type something first"
	case errors.Is(err, domain.ErrTurnInFlight):
		return "One moment, still styling..."
	default:
		return err.Error()
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height/2)
	v.statusbar.SetWidth(width)
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// ProductList exposes the list component for app-level coordination.
func (v *View) ProductList() *list.ProductList {
	return v.list
}
