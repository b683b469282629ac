package domain

// Role identifies the author of a conversation message.
type Role string

const (
	// RoleUser marks a message written by the user.
	RoleUser Role = "user"

	// RoleAssistant marks a message written by the assistant.
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation history.
// History is append-only; earlier messages are never modified.
// The active filter prompt is NOT stored inside the message: it lives
// in a cursor held alongside the history and is joined with the latest
// assistant message at read time.
type Message struct {
	// ID is the unique identifier for the message.
	ID string

	// Role is who authored the message.
	Role Role

	// Content is the message text.
	Content string
}

// PromptKind identifies one of the guided filter prompts.
type PromptKind string

// Recognised prompt kinds.
const (
	// PromptPrice asks for a budget.
	PromptPrice PromptKind = "price"

	// PromptColor asks for preferred colours.
	PromptColor PromptKind = "color"

	// PromptSize asks for the user's size.
	PromptSize PromptKind = "size"

	// PromptCategory asks for preferred categories.
	PromptCategory PromptKind = "category"

	// PromptBrand asks for preferred brands.
	PromptBrand PromptKind = "brand"
)

// FilterPrompt describes one pending guided question shown inline
// in the conversation.
type FilterPrompt struct {
	// Kind is which filter dimension the prompt asks about.
	Kind PromptKind

	// Label is the display question.
	Label string

	// Options lists the choices for choice-based prompts.
	// Empty for the price prompt, which uses a range control.
	Options []string
}

// PromptSequence returns the fixed per-turn prompt sequence:
// price, then colour, then size. The sequence never depends on
// the turn's classification.
func PromptSequence() []FilterPrompt {
	return []FilterPrompt{
		{
			Kind:  PromptPrice,
			Label: "What's your budget?",
		},
		{
			Kind:    PromptColor,
			Label:   "Preferred colors?",
			Options: []string{"Black", "White", "Navy", "Beige", "Gray", "Blue", "Red", "Pink", "Green"},
		},
		{
			Kind:    PromptSize,
			Label:   "Your size?",
			Options: []string{"XS", "S", "M", "L", "XL", "XXL"},
		},
	}
}

// StepStatus is the lifecycle state of a thinking step.
type StepStatus string

const (
	// StepThinking marks the step currently in progress.
	StepThinking StepStatus = "thinking"

	// StepComplete marks a finished step.
	StepComplete StepStatus = "complete"
)

// ThinkingStep is a transient assistant reasoning caption revealed
// while a turn is in flight. Steps are created and destroyed within
// a single turn; they are never persisted once the turn's final
// message is emitted.
type ThinkingStep struct {
	// ID is the unique identifier for the step.
	ID string

	// Step is the display caption.
	Step string

	// Status is the step's lifecycle state.
	Status StepStatus
}
