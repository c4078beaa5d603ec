// Package domain defines the core entities for authorlist.
//
// This package is the innermost layer of the hexagon. It has NO external
// dependencies and defines the fundamental types:
//
//   - Institute: an address keyed by its nickname code
//   - Author: one included line of the author file
//   - InstituteIndex: dense 1-based positions of referenced institutes
//   - Listing: everything a renderer needs for one run
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
