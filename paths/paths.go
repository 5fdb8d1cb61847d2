package paths

import (
	"fmt"

	"shapekit/internal/common"
	"shapekit/shape"
)

// Paths enumerates every dot-joined path reachable from the root within the
// depth budget, including intermediate container paths, in record field
// order. Each descent into a field shape or an array element costs one depth
// unit; a field encountered at zero remaining depth still contributes its
// own name, but nothing deeper. On a leaf or an empty record the result is
// the single empty path.
//
// Each call is a fresh bounded depth-first traversal; the budget guarantees
// termination even on self-referential shapes.
func Paths(s *shape.Shape, depth int) ([]string, error) {
	var out []string

	if err := collect(s, "", depth, &out); err != nil {
		return nil, err
	}

	if common.IsEmpty(out) {
		return []string{""}, nil
	}

	return out, nil
}

func collect(s *shape.Shape, prefix string, depth int, out *[]string) error {
	kind, err := shape.Classify(s)
	if err != nil {
		if prefix != "" {
			return fmt.Errorf("at %q: %w", prefix, err)
		}

		return err
	}

	switch kind {
	case shape.KindLeaf:
		// Terminal: nothing to address below.

	case shape.KindArray:
		// No segment of its own; element paths surface under prefix.
		if depth > 0 {
			return collect(s.Elem, prefix, depth-1, out)
		}

	case shape.KindRecord:
		for _, f := range s.Fields {
			p := Join(prefix, f.Name)
			*out = append(*out, p)

			if depth > 0 {
				if err := collect(f.Shape, p, depth-1, out); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// Join concatenates a parent path and a child field name with a dot.
func Join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
