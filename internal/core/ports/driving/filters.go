package driving

import "github.com/atelier-labs/stylist-cli/internal/core/domain"

// FilterService maintains the session's filter state and derives the
// visible product subset from the current catalog bucket.
type FilterService interface {
	// Filters returns the current filter state.
	Filters() domain.Filters

	// Visible returns the products of the current bucket passing all
	// filters, in catalog order. Recomputed on every read.
	Visible() []domain.Product

	// Change applies a partial filter update without narration or
	// prompt advancement.
	Change(patch domain.FilterPatch)

	// Reset restores the default (unconstrained) filter state.
	Reset()

	// SelectPriceRange sets the price range, appends the price
	// confirmation and schedules a prompt advance.
	SelectPriceRange(min, max float64)

	// ToggleColor flips a colour in or out of the colour set.
	// Turning a colour on appends a confirmation and schedules a
	// prompt advance; turning it off does neither.
	ToggleColor(color string)

	// ToggleSize flips a size in or out of the size set, with the
	// same on/off asymmetry as ToggleColor.
	ToggleSize(size string)

	// AdvancePrompt moves the prompt cursor forward one step,
	// clearing the active prompt once the sequence is exhausted.
	// No-op when the latest message is not an assistant message.
	AdvancePrompt()

	// AvailableBrands returns the distinct brands in the current bucket.
	AvailableBrands() []string

	// AvailableCategories returns the distinct categories in the current bucket.
	AvailableCategories() []string
}
