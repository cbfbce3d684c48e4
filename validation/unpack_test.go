package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func fieldPaths(fields []*entry) []Path {
	out := make([]Path, len(fields))
	for i, f := range fields {
		out[i] = f.path(false)
	}
	return out
}

func subtreeOwners(subtrees []subtreeTask) []string {
	out := make([]string, len(subtrees))
	for i, st := range subtrees {
		out[i] = st.owner.Name
	}
	return out
}

// Pattern: Result comparison
func TestUnpackOrder(t *testing.T) {
	e := newTestEngine(t, NewRegistry())
	input := map[string]any{
		"email":     "a@b.c",
		"people":    []any{map[string]any{"theName": "ada", "theAge": 36}},
		"numbers":   []any{1, 2},
		"thePerson": map[string]any{"theName": "bob"},
	}

	fields, subtrees, err := e.unpack(input, e.schema.Types["AccountInput"])
	require.NoError(t, err)

	wantFields := []Path{
		{"email"},
		{"numbers"},
		{"people", 0, "theName"},
		{"people", 0, "theAge"},
		{"thePerson", "theName"},
	}
	if diff := cmp.Diff(wantFields, fieldPaths(fields)); diff != "" {
		t.Fatalf("field task order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"PersonInput", "PersonInput"}, subtreeOwners(subtrees)); diff != "" {
		t.Fatalf("subtree task order mismatch (-want +got):\n%s", diff)
	}
}

func TestUnpackScalarListIsOneTask(t *testing.T) {
	e := newTestEngine(t, NewRegistry())
	input := map[string]any{"numbers": []any{1, 2, 3}}

	fields, subtrees, err := e.unpack(input, e.schema.Types["AccountInput"])
	require.NoError(t, err)
	require.Empty(t, subtrees)
	require.Len(t, fields, 1)
	require.Equal(t, Path{"numbers"}, fields[0].path(false))
	require.Equal(t, []any{1, 2, 3}, fields[0].value)
}

func TestUnpackScalarListInsideListElementKeepsIndex(t *testing.T) {
	e := newTestEngine(t, NewRegistry())
	input := map[string]any{
		"people": []any{map[string]any{"nicknames": []any{"al"}}},
	}

	fields, _, err := e.unpack(input, e.schema.Types["AccountInput"])
	require.NoError(t, err)
	require.Len(t, fields, 1)
	require.Equal(t, Path{"people", 0, "nicknames"}, fields[0].path(false))
}

func TestUnpackNullTolerance(t *testing.T) {
	e := newTestEngine(t, NewRegistry())

	t.Run("NullNestedObject", func(t *testing.T) {
		fields, subtrees, err := e.unpack(map[string]any{"thePerson": nil}, e.schema.Types["AccountInput"])
		require.NoError(t, err)
		require.Empty(t, fields)
		require.Empty(t, subtrees)
	})

	t.Run("NullList", func(t *testing.T) {
		fields, subtrees, err := e.unpack(map[string]any{"people": nil}, e.schema.Types["AccountInput"])
		require.NoError(t, err)
		require.Empty(t, fields)
		require.Empty(t, subtrees)
	})

	t.Run("NullListElement", func(t *testing.T) {
		fields, subtrees, err := e.unpack(map[string]any{"people": []any{nil}}, e.schema.Types["AccountInput"])
		require.NoError(t, err)
		require.Empty(t, fields)
		require.Empty(t, subtrees)
	})

	t.Run("NullScalarListStaysATask", func(t *testing.T) {
		fields, _, err := e.unpack(map[string]any{"numbers": nil}, e.schema.Types["AccountInput"])
		require.NoError(t, err)
		require.Len(t, fields, 1)
		require.Nil(t, fields[0].value)
	})
}

func TestUnpackSkipsUndeclaredKeys(t *testing.T) {
	e := newTestEngine(t, NewRegistry())
	fields, subtrees, err := e.unpack(map[string]any{"bogus": 1, "email": "a@b.c"}, e.schema.Types["AccountInput"])
	require.NoError(t, err)
	require.Empty(t, subtrees)
	require.Len(t, fields, 1)
	require.Equal(t, "email", fields[0].name)
}

func TestUnpackStructuralMismatch(t *testing.T) {
	e := newTestEngine(t, NewRegistry())

	_, _, err := e.unpack(map[string]any{"thePerson": "oops"}, e.schema.Types["AccountInput"])
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected an input object")

	_, _, err = e.unpack(map[string]any{"people": "oops"}, e.schema.Types["AccountInput"])
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a list")

	_, _, err = e.unpack(map[string]any{"people": []any{"oops"}}, e.schema.Types["AccountInput"])
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not an input object")
}

func TestUnpackDeeplyNested(t *testing.T) {
	e := newTestEngine(t, NewRegistry())
	// people[1] present, people[0] null: index 1 must survive into paths.
	input := map[string]any{
		"people": []any{nil, map[string]any{"theName": "eve"}},
	}

	fields, subtrees, err := e.unpack(input, e.schema.Types["AccountInput"])
	require.NoError(t, err)
	require.Len(t, subtrees, 1)
	require.Len(t, fields, 1)
	require.Equal(t, Path{"people", 1, "theName"}, fields[0].path(false))
}
