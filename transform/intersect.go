package transform

import (
	"fmt"

	"shapekit/shape"
)

// Intersect merges secondary into the name gaps of primary.
//
// For every primary record field whose shape is itself a record, the
// sub-shape is recursively intersected against the entire secondary shape,
// not against a same-named sub-field of it. All other primary fields pass
// through unchanged. Fields present in secondary but absent by name from
// primary are then appended, unchanged, in secondary's order.
//
// The merge is deliberately asymmetric: a primary field is never overwritten
// by secondary at any depth; secondary only fills name gaps.
//
// A non-record primary is returned verbatim; a non-record secondary
// contributes no fields. Depth exhaustion returns the primary subtree
// verbatim, same as the other rewrites.
func Intersect(primary, secondary *shape.Shape, depth int) (*shape.Shape, error) {
	pk, err := shape.Classify(primary)
	if err != nil {
		return nil, fmt.Errorf("primary: %w", err)
	}

	sk, err := shape.Classify(secondary)
	if err != nil {
		return nil, fmt.Errorf("secondary: %w", err)
	}

	if pk != shape.KindRecord || depth <= 0 {
		return primary, nil
	}

	fields := append([]shape.Field(nil), primary.Fields...)

	for i := range fields {
		fk, err := shape.Classify(fields[i].Shape)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fields[i].Name, err)
		}

		if fk != shape.KindRecord {
			continue
		}

		sub, err := Intersect(fields[i].Shape, secondary, depth-1)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fields[i].Name, err)
		}

		fields[i].Shape = sub
	}

	if sk == shape.KindRecord {
		for _, sf := range secondary.Fields {
			if _, taken := primary.FieldByName(sf.Name); taken {
				continue
			}

			fields = append(fields, sf)
		}
	}

	return shape.RecordOf(fields...), nil
}
