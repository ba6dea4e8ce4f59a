// Package finance implements the budget realization and report computations
// of SIKUANG.
//
// Everything in this package is a pure function over already fetched data:
// it performs no I/O, holds no state between calls and never panics on
// malformed numeric input. Structural problems like a date range that ends
// before it starts are reported as errors so that the caller can decide
// whether they are fatal.
package finance
