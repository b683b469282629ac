package tui

import "errors"

// ErrMissingStylistService is returned when the stylist service is not provided.
var ErrMissingStylistService = errors.New("tui: stylist service is required")

// ErrMissingFilterService is returned when the filter service is not provided.
var ErrMissingFilterService = errors.New("tui: filter service is required")

// ErrMissingCartService is returned when the cart service is not provided.
var ErrMissingCartService = errors.New("tui: cart service is required")

// ErrMissingCheckoutService is returned when the checkout service is not provided.
var ErrMissingCheckoutService = errors.New("tui: checkout service is required")
