// Package domain defines the core business entities for Stylist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: An immutable catalog item
//   - Filters: The five-attribute product filter state
//   - Message: One entry in the conversation history
//   - ThinkingStep: A transient assistant "thinking" caption
//   - CartItem: One cart line keyed by product, size and colour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
