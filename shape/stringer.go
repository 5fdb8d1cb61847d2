package shape

import "strings"

// String returns a compact human-readable rendering of the shape.
// Examples:
//   - "string" for a leaf
//   - "opaque(func)" for an opaque leaf
//   - "[]string" for an array
//   - "record{id: number, name?: string, tags: readonly []string}" for a record
//
// Rendering is bounded by DefaultDepth; deeper records collapse to "record{...}".
func (s *Shape) String() string {
	return render(s, DefaultDepth)
}

func render(s *Shape, depth int) string {
	if s == nil {
		return "<nil>"
	}

	switch s.Kind {
	case KindLeaf:
		if s.Opaque {
			return "opaque(" + s.TypeID + ")"
		}

		return s.TypeID

	case KindArray:
		if depth <= 0 {
			return "[]..."
		}

		return "[]" + render(s.Elem, depth-1)

	case KindRecord:
		if depth <= 0 {
			return "record{...}"
		}

		var b strings.Builder

		b.WriteString("record{")

		for i, f := range s.Fields {
			if i > 0 {
				b.WriteString(", ")
			}

			b.WriteString(f.Name)

			if f.Optional {
				b.WriteByte('?')
			}

			b.WriteString(": ")

			if f.Readonly {
				b.WriteString("readonly ")
			}

			b.WriteString(render(f.Shape, depth-1))
		}

		b.WriteByte('}')

		return b.String()

	default:
		return "<invalid>"
	}
}
