package paths

import (
	"errors"
	"fmt"
	"strings"

	"shapekit/internal/match"
	"shapekit/shape"
)

// ErrNotFound reports a path that does not address a location in the shape:
// a segment names no existing field, or a non-record is reached before the
// path is exhausted. It is an expected, branchable outcome, distinct from a
// malformed shape. Depth truncation in Paths is never reported as NotFound.
var ErrNotFound = errors.New("path not found in shape")

// Resolve walks path one dot-segment at a time and returns the shape at that
// location. The empty path resolves to the root. Arrays are unwrapped
// transparently before each segment match, so every path Paths exposes
// through an array resolves too; a path ending at an array field returns the
// array shape itself.
//
// When a segment names no field, the error carries the closest existing
// field name as a suggestion if one is similar enough.
func Resolve(s *shape.Shape, path string) (*shape.Shape, error) {
	if _, err := shape.Classify(s); err != nil {
		return nil, err
	}

	if path == "" {
		return s, nil
	}

	current := s

	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("%w: path %q has an empty segment", ErrNotFound, path)
		}

		// Array wrappers contribute no segment; step through them, bounded
		// the same way every descent is.
		for i := 0; i < shape.DefaultDepth; i++ {
			if current == nil || current.Kind != shape.KindArray {
				break
			}

			current = current.Elem
		}

		kind, err := shape.Classify(current)
		if err != nil {
			return nil, fmt.Errorf("at segment %q: %w", seg, err)
		}

		if kind != shape.KindRecord {
			return nil, fmt.Errorf("%w: segment %q addresses into a %s", ErrNotFound, seg, kind)
		}

		f, ok := current.FieldByName(seg)
		if !ok {
			if hint, found := closestField(current, seg); found {
				return nil, fmt.Errorf("%w: no field %q (did you mean %q?)", ErrNotFound, seg, hint)
			}

			return nil, fmt.Errorf("%w: no field %q", ErrNotFound, seg)
		}

		current = f.Shape
	}

	return current, nil
}

func closestField(rec *shape.Shape, seg string) (string, bool) {
	names := make([]string, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		names = append(names, f.Name)
	}

	return match.Closest(seg, names, match.DefaultMinScore)
}
