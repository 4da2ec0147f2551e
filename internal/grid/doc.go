// Package grid models a rectangular 2D field of single-byte cells read from
// puzzle text, together with the coordinate arithmetic the spatial kernels
// share.
//
// What:
//
//   - Grid is immutable once built; Width and Height are precomputed.
//   - Position is a comparable (Row, Col) value usable as a map key.
//   - Direction is one of Up, Right, Down, Left with a clockwise rotation.
//
// Bounds:
//
//   - Stepping never wraps. A step that would leave the grid (including any
//     step that would make a coordinate negative) reports ok == false.
//   - CellAt returns ok == false for out-of-range positions instead of
//     panicking.
//
// Errors:
//
//   - ErrEmptyGrid: input has no non-blank rows.
//   - ErrNonRectangular: rows have differing lengths.
//
// Both are returned wrapped in a *parse.Error and therefore also match
// parse.ErrMalformedInput.
//
// Complexity: Parse and New are O(W×H); every lookup is O(1).
package grid
