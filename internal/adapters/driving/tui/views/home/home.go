// Package home provides the landing view for the TUI.
package home

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/messages"
	"github.com/atelier-labs/stylist-cli/internal/adapters/driving/tui/styles"
	"github.com/atelier-labs/stylist-cli/internal/core/domain"
)

// Item represents a single home option.
type Item struct {
	Label      string
	Suggestion string // Non-empty for canned opening queries
	View       messages.ViewType
	Quit       bool
}

// View represents the landing view: the greeting, canned suggestions
// and basic navigation.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new home view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(domain.Suggestions())+3)
	for _, suggestion := range domain.Suggestions() {
		items = append(items, Item{Label: suggestion, Suggestion: suggestion, View: messages.ViewChat})
	}
	items = append(items,
		Item{Label: "Ask something else", View: messages.ViewChat},
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles: s,
		items:  items,
		width:  80,
		height: 24,
	}
}

// Init initialises the home view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the home view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Quit {
				return v, tea.Quit
			}
			if item.Suggestion != "" {
				suggestion := item.Suggestion
				return v, func() tea.Msg {
					return messages.SuggestionPicked{Text: suggestion}
				}
			}
			view := item.View
			return v, func() tea.Msg {
				return messages.ViewChanged{View: view}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the home view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Stylist"))
	b.WriteString("\n\n")

	greeting := v.styles.AssistantMessage.Render(domain.Greeting)
	b.WriteString(greeting)
	b.WriteString("\n\n")

	b.WriteString(v.styles.Subtitle.Render("Try one of these:"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		line := v.styles.Normal.Render(item.Label)
		if i == v.selected {
			cursor = "> "
			line = v.styles.Selected.Render(item.Label)
		}
		b.WriteString(cursor + line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}
