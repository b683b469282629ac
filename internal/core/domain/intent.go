package domain

import "strings"

// StyleIntent is the classification of a user utterance.
// It selects the thinking captions, the assistant response and the
// catalog bucket for a turn. All three are total functions over this
// enum so they can never diverge for the same input.
type StyleIntent string

// Recognised style intents.
const (
	// IntentFormal covers formal and evening wear requests.
	IntentFormal StyleIntent = "formal"

	// IntentCasual covers casual and everyday wear requests.
	IntentCasual StyleIntent = "casual"

	// IntentWork covers office and professional wear requests.
	IntentWork StyleIntent = "work"

	// IntentDefault is the fallback when no keyword group matches.
	IntentDefault StyleIntent = "default"
)

// IsValid returns true if the intent is recognised.
func (i StyleIntent) IsValid() bool {
	switch i {
	case IntentFormal, IntentCasual, IntentWork, IntentDefault:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i StyleIntent) String() string {
	return string(i)
}

// Description returns a human-readable description of the intent.
func (i StyleIntent) Description() string {
	switch i {
	case IntentFormal:
		return "Formal and evening wear"
	case IntentCasual:
		return "Casual everyday wear"
	case IntentWork:
		return "Professional workwear"
	case IntentDefault:
		return "General selection"
	default:
		return "Unknown"
	}
}

// Keyword groups checked in fixed priority order. First match wins.
var intentKeywords = []struct {
	intent   StyleIntent
	keywords []string
}{
	{IntentFormal, []string{"dress", "evening", "formal"}},
	{IntentCasual, []string{"casual", "everyday", "comfortable"}},
	{IntentWork, []string{"work", "office", "professional"}},
}

// ClassifyUtterance matches an utterance against the keyword groups,
// case-insensitively, and returns the winning intent. Utterances that
// match no group classify as IntentDefault.
func ClassifyUtterance(utterance string) StyleIntent {
	lower := strings.ToLower(utterance)
	for _, group := range intentKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.intent
			}
		}
	}
	return IntentDefault
}

// ThinkingCaptions returns the ordered thinking-step captions for the intent.
// Every intent yields exactly four captions.
func (i StyleIntent) ThinkingCaptions() []string {
	switch i {
	case IntentFormal:
		return []string{
			"Analyzing your occasion and style preferences...",
			"Searching our formal wear collection...",
			"Evaluating silhouettes and fabrics for elegance...",
			"Curating the perfect pieces for you...",
		}
	case IntentCasual:
		return []string{
			"Understanding your comfort priorities...",
			"Exploring casual essentials and versatile pieces...",
			"Considering color palettes and fabric textures...",
			"Selecting items that match your lifestyle...",
		}
	case IntentWork:
		return []string{
			"Assessing professional style requirements...",
			"Browsing contemporary workwear collections...",
			"Balancing sophistication with comfort...",
			"Building your ideal work wardrobe...",
		}
	default:
		return []string{
			"Processing your style preferences...",
			"Analyzing current trends and timeless pieces...",
			"Matching items to your aesthetic...",
			"Finalizing your personalized selection...",
		}
	}
}

// Response returns the assistant's closing message for the intent.
func (i StyleIntent) Response() string {
	switch i {
	case IntentFormal:
		return "I've curated a selection of elegant dresses perfect for formal occasions. " +
			"These pieces combine timeless sophistication with modern cuts. " +
			"Would you like to see more casual options or accessories to complete the look?"
	case IntentCasual:
		return "Here are some effortlessly chic casual pieces that prioritize comfort without sacrificing style. " +
			"These versatile items can be mixed and matched for endless outfit possibilities. " +
			"What's your preferred color palette?"
	case IntentWork:
		return "I've selected polished pieces perfect for the modern workplace. " +
			"These items strike the perfect balance between professional and stylish. " +
			"Would you like to explore statement accessories?"
	default:
		return "Based on your preferences, I've curated a collection that matches your style. " +
			"Each piece has been selected for quality, fit, and versatility. " +
			"Let me know if you'd like to refine the selection or explore different categories!"
	}
}
