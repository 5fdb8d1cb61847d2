package shape

import (
	"errors"
	"strings"

	"shapekit/internal/common"
)

// Problem is a single construction defect found by Validate, located by its
// dot path from the root ("[]" marks an array element).
type Problem struct {
	Path    string
	Message string
}

// String returns a formatted problem string.
func (p Problem) String() string {
	if p.Path == "" {
		return p.Message
	}

	return p.Path + ": " + p.Message
}

// Validate walks a shape up to DefaultDepth and collects construction
// defects: unrecognized kinds, nil sub-shapes, missing leaf type identifiers,
// empty or duplicate field names. Returns nil when the shape is well formed.
//
// Classify already rejects malformed nodes at use sites; Validate exists to
// surface a bad graph eagerly, with paths, instead of mid-traversal.
func Validate(s *Shape) error {
	return ValidateDepth(s, DefaultDepth)
}

// ValidateDepth is Validate with an explicit depth budget. Sub-shapes beyond
// the budget are not inspected.
func ValidateDepth(s *Shape, depth int) error {
	var problems []Problem

	validateAt(s, "", depth, &problems)

	if common.IsEmpty(problems) {
		return nil
	}

	parts := make([]string, len(problems))
	for i, p := range problems {
		parts[i] = p.String()
	}

	return errors.New("invalid shape: " + strings.Join(parts, "; "))
}

func validateAt(s *Shape, path string, depth int, out *[]Problem) {
	kind, err := Classify(s)
	if err != nil {
		*out = append(*out, Problem{Path: path, Message: "not a recognized shape kind"})
		return
	}

	switch kind {
	case KindLeaf:
		if s.TypeID == "" {
			*out = append(*out, Problem{Path: path, Message: "leaf has no type identifier"})
		}

	case KindArray:
		if depth <= 0 {
			return
		}

		if s.Elem == nil {
			*out = append(*out, Problem{Path: path, Message: "array has no element shape"})
			return
		}

		validateAt(s.Elem, path+"[]", depth-1, out)

	case KindRecord:
		seen := make(map[string]struct{}, len(s.Fields))

		for _, f := range s.Fields {
			fieldPath := joinPath(path, f.Name)

			if f.Name == "" {
				*out = append(*out, Problem{Path: path, Message: "record field has empty name"})
				continue
			}

			if _, dup := seen[f.Name]; dup {
				*out = append(*out, Problem{Path: fieldPath, Message: "duplicate field name"})
				continue
			}

			seen[f.Name] = struct{}{}

			if depth > 0 {
				validateAt(f.Shape, fieldPath, depth-1, out)
			}
		}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
