// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

// SessionChanged is sent when engine state changed outside the UI
// loop, typically from a scheduler callback. Views re-read their
// services when they receive it.
type SessionChanged struct{}

// SuggestionPicked is sent when the user picks a canned opening query
// on the home view.
type SuggestionPicked struct {
	Text string
}

// ProductAdded is sent after a product lands in the cart, so the
// status bar can confirm.
type ProductAdded struct {
	Name string
}

// CheckoutFinished is sent when an order completes and the UI should
// return to the chat view.
type CheckoutFinished struct{}

// ThemeChanged is sent when the configured theme was edited while the
// TUI is running. The app rebuilds its styles from the named theme.
type ThemeChanged struct {
	Name string
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewHome is the landing view with greeting and suggestions.
	ViewHome ViewType = iota
	// ViewChat is the conversation and product browsing view.
	ViewChat
	// ViewCart is the shopping cart view.
	ViewCart
	// ViewCheckout is the checkout flow view.
	ViewCheckout
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewChat:
		return "chat"
	case ViewCart:
		return "cart"
	case ViewCheckout:
		return "checkout"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}
