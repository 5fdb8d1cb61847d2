// Package shape provides the reified structure description every other
// package operates on: a three-variant tagged union (leaf, array, record)
// with per-field optional/readonly flags.
//
// Key types:
//   - Kind: discriminates the three recognized variants
//   - Shape: describes a value's structure, never its content
//   - Field: a named record member with optional/readonly flags
//
// Classify is the single dispatch point; callers recurse, it does not.
package shape
