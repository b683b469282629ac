package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingStylistService,
		ErrMissingFilterService,
		ErrMissingCartService,
		ErrMissingCheckoutService,
	}

	// Ensure all errors are unique
	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingStylistService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingStylistService.Error(), "stylist service")
}

func TestErrMissingFilterService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingFilterService.Error(), "filter service")
}

func TestErrMissingCartService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCartService.Error(), "cart service")
}

func TestErrMissingCheckoutService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCheckoutService.Error(), "checkout service")
}
