package shape

import "errors"

// DefaultDepth is the recursion budget applied when callers have no better
// bound. A Shape graph is only guaranteed acyclic up to this many nested
// record/array descents; every traversal must stop there regardless of the
// graph's actual cyclicity.
const DefaultDepth = 5

// ErrInvalidShapeKind reports a Shape that matches none of the recognized
// variants. It is a caller construction bug, never silently coerced.
var ErrInvalidShapeKind = errors.New("shape does not match a recognized kind")

// Shape describes a value's structure, never its content. Exactly one variant
// is populated, selected by Kind:
//   - KindLeaf: TypeID (and Opaque for callable-like values)
//   - KindArray: Elem
//   - KindRecord: Fields
//
// A Shape is immutable by convention: built once, never modified afterwards,
// so sharing across goroutines needs no coordination. Transforms always
// return a fresh Shape. Fields are exported so callers can assemble graphs
// directly, including self-referential ones.
type Shape struct {
	Kind   Kind
	TypeID string  // Leaf: opaque identifier of the terminal type
	Opaque bool    // Leaf: callable-like, transforms never decompose it
	Elem   *Shape  // Array: homogeneous element shape
	Fields []Field // Record: named members, insertion order preserved
}

// Field describes a single named member of a record shape. Optional and
// Readonly are meaningful only here; leaves and arrays carry no flags.
type Field struct {
	Name     string
	Shape    *Shape
	Optional bool
	Readonly bool
}

// Leaf returns a terminal shape for the given type identifier.
func Leaf(typeID string) *Shape {
	return &Shape{Kind: KindLeaf, TypeID: typeID}
}

// OpaqueLeaf returns a terminal shape for callable-like values that deep
// transforms must pass through without decomposing.
func OpaqueLeaf(typeID string) *Shape {
	return &Shape{Kind: KindLeaf, TypeID: typeID, Opaque: true}
}

// ArrayOf returns a homogeneous sequence shape.
func ArrayOf(elem *Shape) *Shape {
	return &Shape{Kind: KindArray, Elem: elem}
}

// RecordOf returns a named-field structure shape. Field order is kept as
// given; output ordering of every operation derives from it.
func RecordOf(fields ...Field) *Shape {
	return &Shape{Kind: KindRecord, Fields: fields}
}

// F is a shorthand for a plain (required, mutable) field.
func F(name string, s *Shape) Field {
	return Field{Name: name, Shape: s}
}

// FieldByName returns the record field with the given name.
func (s *Shape) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Classify reports which recognized variant a shape is. It is the single
// dispatch point every traversal builds on: pure, O(1), no recursion of its
// own. Malformed shapes surface as ErrInvalidShapeKind.
func Classify(s *Shape) (Kind, error) {
	if s == nil {
		return KindInvalid, ErrInvalidShapeKind
	}

	switch s.Kind {
	case KindLeaf, KindArray, KindRecord:
		return s.Kind, nil
	default:
		return KindInvalid, ErrInvalidShapeKind
	}
}

// Equal reports deep structural equality: same kinds, type identifiers,
// flags, and field order at every level. It assumes acyclic inputs.
func Equal(a, b *Shape) bool {
	if a == b {
		return true
	}

	if a == nil || b == nil || a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindLeaf:
		return a.TypeID == b.TypeID && a.Opaque == b.Opaque

	case KindArray:
		return Equal(a.Elem, b.Elem)

	case KindRecord:
		if len(a.Fields) != len(b.Fields) {
			return false
		}

		for i := range a.Fields {
			af, bf := a.Fields[i], b.Fields[i]
			if af.Name != bf.Name || af.Optional != bf.Optional || af.Readonly != bf.Readonly {
				return false
			}

			if !Equal(af.Shape, bf.Shape) {
				return false
			}
		}

		return true

	default:
		return false
	}
}
