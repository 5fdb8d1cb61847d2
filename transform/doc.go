// Package transform implements deep structural rewrites over a Shape:
// Partial, Required, Readonly, Mutable, and the asymmetric Intersect.
//
// Every function is pure and returns a fresh Shape; inputs are never
// mutated. Recursion is bounded by an explicit depth budget: once it is
// exhausted the remaining subtree is returned verbatim. Truncation is
// policy, not an error.
package transform
