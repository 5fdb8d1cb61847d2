package transform_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapekit/shape"
	"shapekit/transform"
)

// profileShape builds the nested record used across the transform and paths
// tests: id plus a profile with a nested address.
func profileShape() *shape.Shape {
	return shape.RecordOf(
		shape.F("id", shape.Leaf("number")),
		shape.F("profile", shape.RecordOf(
			shape.F("name", shape.Leaf("string")),
			shape.F("address", shape.RecordOf(
				shape.F("city", shape.Leaf("string")),
				shape.F("zip", shape.Leaf("number")),
			)),
		)),
	)
}

// requireAllFields walks every record field reachable in got and asserts the
// predicate; depth is irrelevant here because the fixtures are small.
func requireAllFields(t *testing.T, s *shape.Shape, check func(t *testing.T, f shape.Field)) {
	t.Helper()

	if s == nil || s.Kind != shape.KindRecord {
		return
	}

	for _, f := range s.Fields {
		check(t, f)
		requireAllFields(t, f.Shape, check)
	}
}

func TestPartial_MarksEveryLevelOptional(t *testing.T) {
	src := profileShape()

	got, err := transform.Partial(src, shape.DefaultDepth)
	require.NoError(t, err)

	t.Log(spew.Sdump(got))

	requireAllFields(t, got, func(t *testing.T, f shape.Field) {
		assert.True(t, f.Optional, "field %q should be optional", f.Name)
		assert.False(t, f.Readonly, "field %q readonly flag should be untouched", f.Name)
	})

	// The input is never mutated.
	requireAllFields(t, src, func(t *testing.T, f shape.Field) {
		assert.False(t, f.Optional, "source field %q was mutated", f.Name)
	})
}

func TestRequired_ClearsOptionalEverywhere(t *testing.T) {
	partial, err := transform.Partial(profileShape(), shape.DefaultDepth)
	require.NoError(t, err)

	got, err := transform.Required(partial, shape.DefaultDepth)
	require.NoError(t, err)

	requireAllFields(t, got, func(t *testing.T, f shape.Field) {
		assert.False(t, f.Optional, "field %q should be required", f.Name)
	})

	if diff := cmp.Diff(profileShape(), got); diff != "" {
		t.Errorf("Required(Partial(s)) differs from s (-want +got):\n%s", diff)
	}
}

func TestReadonly_ArrayElementPassesThrough(t *testing.T) {
	elem := shape.Leaf("string")
	src := shape.RecordOf(shape.F("tags", shape.ArrayOf(elem)))

	got, err := transform.Readonly(src, shape.DefaultDepth)
	require.NoError(t, err)

	f, ok := got.FieldByName("tags")
	require.True(t, ok)

	assert.True(t, f.Readonly)
	require.Equal(t, shape.KindArray, f.Shape.Kind)

	// The element is a leaf: it carries no readonly flag and comes back as-is.
	assert.Same(t, elem, f.Shape.Elem)
}

func TestMutable_ResetLaw(t *testing.T) {
	// deepMutable fully resets flags regardless of prior state.
	src := profileShape()

	ro, err := transform.Readonly(src, shape.DefaultDepth)
	require.NoError(t, err)

	viaReadonly, err := transform.Mutable(ro, shape.DefaultDepth)
	require.NoError(t, err)

	direct, err := transform.Mutable(src, shape.DefaultDepth)
	require.NoError(t, err)

	assert.True(t, shape.Equal(direct, viaReadonly))

	if diff := cmp.Diff(direct, viaReadonly); diff != "" {
		t.Errorf("Mutable(Readonly(s)) differs from Mutable(s) (-want +got):\n%s", diff)
	}
}

func TestMutable_ClearsBothFlags(t *testing.T) {
	src := shape.RecordOf(
		shape.Field{Name: "a", Shape: shape.Leaf("int"), Optional: true, Readonly: true},
		shape.Field{Name: "b", Shape: shape.Leaf("string"), Optional: true},
	)

	got, err := transform.Mutable(src, shape.DefaultDepth)
	require.NoError(t, err)

	requireAllFields(t, got, func(t *testing.T, f shape.Field) {
		assert.False(t, f.Optional, "field %q should be present", f.Name)
		assert.False(t, f.Readonly, "field %q should be mutable", f.Name)
	})
}

func TestIdempotence(t *testing.T) {
	transforms := []struct {
		name string
		fn   func(*shape.Shape, int) (*shape.Shape, error)
	}{
		{"Partial", transform.Partial},
		{"Required", transform.Required},
		{"Readonly", transform.Readonly},
		{"Mutable", transform.Mutable},
	}

	for _, tt := range transforms {
		t.Run(tt.name, func(t *testing.T) {
			once, err := tt.fn(profileShape(), shape.DefaultDepth)
			require.NoError(t, err)

			twice, err := tt.fn(once, shape.DefaultDepth)
			require.NoError(t, err)

			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("%s is not idempotent (-once +twice):\n%s", tt.name, diff)
			}
		})
	}
}

func TestOpaqueLeafPassesThrough(t *testing.T) {
	callback := shape.OpaqueLeaf("func")
	src := shape.RecordOf(shape.F("onChange", callback))

	got, err := transform.Readonly(src, shape.DefaultDepth)
	require.NoError(t, err)

	f, ok := got.FieldByName("onChange")
	require.True(t, ok)

	assert.True(t, f.Readonly)
	assert.Same(t, callback, f.Shape, "opaque leaf must never be decomposed or rebuilt")
}

func TestDepthExhaustion_SelfReferential(t *testing.T) {
	self := &shape.Shape{Kind: shape.KindRecord}
	self.Fields = []shape.Field{{Name: "next", Shape: self}}

	got, err := transform.Partial(self, 2)
	require.NoError(t, err)

	// Two levels rewritten, then the remaining subtree comes back verbatim.
	first := got.Fields[0]
	assert.True(t, first.Optional)

	second := first.Shape.Fields[0]
	assert.True(t, second.Optional)

	assert.Same(t, self, second.Shape, "exhausted budget must return the subtree verbatim")
	assert.False(t, self.Fields[0].Optional, "original shape must stay untouched")
}

func TestInvalidShapeKind(t *testing.T) {
	_, err := transform.Partial(&shape.Shape{}, shape.DefaultDepth)
	assert.ErrorIs(t, err, shape.ErrInvalidShapeKind)

	// Nested defects carry the field position.
	src := shape.RecordOf(shape.F("bad", &shape.Shape{Kind: shape.Kind(9)}))

	_, err = transform.Readonly(src, shape.DefaultDepth)
	require.ErrorIs(t, err, shape.ErrInvalidShapeKind)
	assert.ErrorContains(t, err, `field "bad"`)
}
