package transform

import (
	"fmt"

	"shapekit/shape"
)

// flagOp adjusts the flags of one record field. The four deep rewrites
// differ only in this step; recursion and truncation are shared.
type flagOp func(f *shape.Field)

// Partial returns a copy of s with every record field marked optional, at
// every level the depth budget reaches. Leaves pass through unchanged.
func Partial(s *shape.Shape, depth int) (*shape.Shape, error) {
	return applyDeep(s, depth, func(f *shape.Field) {
		f.Optional = true
	})
}

// Required is the mirror of Partial: it clears the optional flag on every
// record field, with the identical recursion and truncation policy.
func Required(s *shape.Shape, depth int) (*shape.Shape, error) {
	return applyDeep(s, depth, func(f *shape.Field) {
		f.Optional = false
	})
}

// Readonly returns a copy of s with every record field marked readonly.
// Array element shapes are recursively processed; opaque leaves pass
// through untouched, never decomposed.
func Readonly(s *shape.Shape, depth int) (*shape.Shape, error) {
	return applyDeep(s, depth, func(f *shape.Field) {
		f.Readonly = true
	})
}

// Mutable is the inverse of Readonly, and stronger: it clears both the
// readonly and the optional flag on every record field, forcing "present,
// mutable" regardless of prior state. Opaque leaves pass through untouched.
func Mutable(s *shape.Shape, depth int) (*shape.Shape, error) {
	return applyDeep(s, depth, func(f *shape.Field) {
		f.Readonly = false
		f.Optional = false
	})
}

// applyDeep rebuilds s with op applied to every record field reached within
// the depth budget. Each descent into an array element or a field shape
// costs one unit; at zero the remaining subtree is returned verbatim.
func applyDeep(s *shape.Shape, depth int, op flagOp) (*shape.Shape, error) {
	kind, err := shape.Classify(s)
	if err != nil {
		return nil, err
	}

	if depth <= 0 {
		return s, nil
	}

	switch kind {
	case shape.KindLeaf:
		return s, nil

	case shape.KindArray:
		elem, err := applyDeep(s.Elem, depth-1, op)
		if err != nil {
			return nil, fmt.Errorf("array element: %w", err)
		}

		return shape.ArrayOf(elem), nil

	default: // shape.KindRecord, per Classify
		fields := append([]shape.Field(nil), s.Fields...)

		for i := range fields {
			op(&fields[i])

			sub, err := applyDeep(fields[i].Shape, depth-1, op)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", fields[i].Name, err)
			}

			fields[i].Shape = sub
		}

		return shape.RecordOf(fields...), nil
	}
}
