//go:build !fastmath

package fastmath

// Selected is the strategy used by Div and DivComplex.
type Selected = Exact

// Enabled reports whether the approximate strategy is selected.
const Enabled = false
