// Package paths implements the dot-path algebra over a Shape: enumerating
// every addressable path (Paths) and resolving a path back to the shape at
// that location (Resolve).
//
// Arrays are transparent to addressing: an element's paths appear under the
// containing field's path, with no segment of their own. Enumeration is
// bounded by an explicit depth budget; resolution walks exactly as deep as
// the path itself.
package paths
