package services

import (
	"fmt"
	"sync"

	"github.com/atelier-labs/stylist-cli/internal/core/domain"
	"github.com/atelier-labs/stylist-cli/internal/core/ports/driving"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// Ensure FilterPipeline implements the interface.
var _ driving.FilterService = (*FilterPipeline)(nil)

// turnNarrator is the slice of the turn engine the pipeline talks
// back to: confirmation strings and prompt-cursor advancement.
type turnNarrator interface {
	AppendFilterResponse(response string)
	ScheduleAdvance()
	AdvancePrompt()
}

// FilterPipeline holds the five-attribute filter state and derives
// the visible subset of the current catalog bucket. Filtering is a
// full recomputation on every read: buckets stay small (tens of
// items), so no incremental diffing is warranted.
type FilterPipeline struct {
	mu       sync.RWMutex
	filters  domain.Filters
	bucket   []domain.Product
	narrator turnNarrator
	notify   func()
}

// NewFilterPipeline creates a pipeline with default filters and an
// empty bucket.
func NewFilterPipeline() *FilterPipeline {
	return &FilterPipeline{
		filters: domain.DefaultFilters(),
		notify:  func() {},
	}
}

// SetNarrator binds the turn engine for confirmations and advances.
func (p *FilterPipeline) SetNarrator(n turnNarrator) {
	p.narrator = n
}

// SetNotify binds the session change-signal hook.
func (p *FilterPipeline) SetNotify(fn func()) {
	p.notify = fn
}

// SetBucket replaces the catalog bucket the pipeline filters over.
func (p *FilterPipeline) SetBucket(products []domain.Product) {
	p.mu.Lock()
	p.bucket = products
	p.mu.Unlock()
	p.notify()
}

// Filters returns a snapshot of the current filter state. The slices
// are copied so callers cannot alias pipeline internals.
func (p *FilterPipeline) Filters() domain.Filters {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.filters
	out.Colors = append([]string(nil), p.filters.Colors...)
	out.Sizes = append([]string(nil), p.filters.Sizes...)
	out.Categories = append([]string(nil), p.filters.Categories...)
	out.Brands = append([]string(nil), p.filters.Brands...)
	return out
}

// Visible returns the bucket products passing every filter dimension,
// in catalog order.
func (p *FilterPipeline) Visible() []domain.Product {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.ApplyFilters(p.bucket, p.filters)
}

// Change applies a partial filter update. No narration, no advance.
func (p *FilterPipeline) Change(patch domain.FilterPatch) {
	p.mu.Lock()
	if patch.PriceRange != nil {
		p.filters.PriceRange = *patch.PriceRange
	}
	if patch.Colors != nil {
		p.filters.Colors = patch.Colors
	}
	if patch.Sizes != nil {
		p.filters.Sizes = patch.Sizes
	}
	if patch.Categories != nil {
		p.filters.Categories = patch.Categories
	}
	if patch.Brands != nil {
		p.filters.Brands = patch.Brands
	}
	p.mu.Unlock()
	p.notify()
}

// Reset restores the default filter state.
func (p *FilterPipeline) Reset() {
	p.mu.Lock()
	p.filters = domain.DefaultFilters()
	p.mu.Unlock()
	p.notify()
}

// SelectPriceRange sets the price range, narrates the choice and
// schedules a prompt advance. Any price selection advances.
func (p *FilterPipeline) SelectPriceRange(min, max float64) {
	p.mu.Lock()
	p.filters.PriceRange = domain.PriceRange{Min: min, Max: max}
	p.mu.Unlock()

	logger.Debug("Price range: %v-%v", min, max)
	if p.narrator != nil {
		p.narrator.AppendFilterResponse(priceResponse(min, max))
		p.narrator.ScheduleAdvance()
	}
	p.notify()
}

// ToggleColor flips a colour in or out of the colour set. Only the
// on transition narrates and advances; toggling off is silent and
// leaves the cursor alone.
func (p *FilterPipeline) ToggleColor(color string) {
	p.mu.Lock()
	turnedOn := !p.filters.HasColor(color)
	if turnedOn {
		p.filters.Colors = append(p.filters.Colors, color)
	} else {
		p.filters.Colors = remove(p.filters.Colors, color)
	}
	p.mu.Unlock()

	if turnedOn && p.narrator != nil {
		p.narrator.AppendFilterResponse(colorResponse(color))
		p.narrator.ScheduleAdvance()
	}
	p.notify()
}

// ToggleSize flips a size in or out of the size set, with the same
// on/off asymmetry as ToggleColor.
func (p *FilterPipeline) ToggleSize(size string) {
	p.mu.Lock()
	turnedOn := !p.filters.HasSize(size)
	if turnedOn {
		p.filters.Sizes = append(p.filters.Sizes, size)
	} else {
		p.filters.Sizes = remove(p.filters.Sizes, size)
	}
	p.mu.Unlock()

	if turnedOn && p.narrator != nil {
		p.narrator.AppendFilterResponse(sizeResponse(size))
		p.narrator.ScheduleAdvance()
	}
	p.notify()
}

// AdvancePrompt delegates to the turn engine's cursor.
func (p *FilterPipeline) AdvancePrompt() {
	if p.narrator != nil {
		p.narrator.AdvancePrompt()
	}
}

// AvailableBrands returns the distinct brands in the current bucket.
func (p *FilterPipeline) AvailableBrands() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.UniqueBrands(p.bucket)
}

// AvailableCategories returns the distinct categories in the current bucket.
func (p *FilterPipeline) AvailableCategories() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return domain.UniqueCategories(p.bucket)
}

// priceResponse narrates a price selection. Caps at or under 100 read
// as budget-friendly, floors at or over 300 as premium, anything else
// as an interpolated range.
func priceResponse(min, max float64) string {
	switch {
	case max <= 100:
		return "Perfect! I'm focusing on budget-friendly pieces under $100. " +
			"These options offer great value without compromising on style."
	case min >= 300:
		return "Excellent choice! I'm curating premium pieces in your price range. " +
			"These items feature exceptional quality and craftsmanship."
	default:
		return fmt.Sprintf("Great! I've adjusted the selection to show pieces between $%.0f-$%.0f. "+
			"This range offers a perfect balance of quality and value.", min, max)
	}
}

// Canned confirmations for the colours offered by the colour prompt.
var colorResponses = map[string]string{
	"Black": "Classic choice! Black is timeless, versatile, and effortlessly sophisticated.",
	"Navy":  "Navy is elegant and professional - a wardrobe essential that pairs beautifully with everything.",
	"White": "White pieces add freshness and elegance. Perfect for creating crisp, polished looks.",
	"Beige": "Beige tones are wonderfully neutral and create soft, sophisticated outfits.",
	"Gray":  "Gray is understated yet refined - ideal for building a versatile wardrobe.",
	"Red":   "Bold and confident! Red makes a powerful statement and adds energy to any look.",
	"Pink":  "Pink brings a feminine, romantic touch. It's both playful and elegant.",
	"Blue":  "Blue is calming and universally flattering. A great choice for any occasion.",
	"Green": "Green adds a fresh, natural element. It's unique yet surprisingly versatile.",
}

func colorResponse(color string) string {
	if r, ok := colorResponses[color]; ok {
		return r
	}
	return fmt.Sprintf("I love %s! I'm filtering to show pieces in this beautiful color.", color)
}

func sizeResponse(size string) string {
	return fmt.Sprintf("Filtering for size %s. All pieces shown will be available in your selected size for a perfect fit.", size)
}

func remove(set []string, value string) []string {
	out := make([]string, 0, len(set))
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
