package driving

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// StylistService drives the conversational turn engine.
//
// A turn is asynchronous: SubmitUtterance returns as soon as the user
// message is appended, and the thinking-step reveal, final assistant
// message and bucket swap land over the following delay chain. Callers
// observe progress through the getters and the Subscribe channel.
type StylistService interface {
	// SubmitUtterance starts a new turn for the given user input.
	// Returns domain.ErrEmptyUtterance for blank input (no state
	// changes) and domain.ErrTurnInFlight while a turn is active.
	SubmitUtterance(utterance string) error

	// Messages returns the conversation history, oldest first.
	Messages() []domain.Message

	// ThinkingSteps returns the steps revealed so far in the
	// in-flight turn, or nil when no turn is active.
	ThinkingSteps() []domain.ThinkingStep

	// FilterResponses returns the confirmation strings accumulated
	// for the current turn, oldest first.
	FilterResponses() []string

	// ActivePrompt returns the filter prompt attached to the latest
	// assistant message, or nil when the sequence is exhausted or no
	// assistant message exists yet.
	ActivePrompt() *domain.FilterPrompt

	// Turning reports whether a turn is in flight.
	Turning() bool

	// Intent returns the classification of the most recent turn.
	Intent() domain.StyleIntent

	// Subscribe returns a channel that receives a signal whenever any
	// observable engine state changes. Signals are coalesced: a slow
	// reader sees at least one signal for any burst of changes.
	Subscribe() <-chan struct{}
}
