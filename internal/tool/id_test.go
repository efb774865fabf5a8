package tool

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"rokit/internal/sources"
)

func newTestID(author, name string) ID {
	return newID(sources.DefaultArtifactProvider(), author, name)
}

func TestParseID_ValidBasic(t *testing.T) {
	cases := []struct {
		input  string
		author string
		name   string
	}{
		{"a/b", "a", "b"},
		{"author/name", "author", "name"},
		{"123abc456/78de90", "123abc456", "78de90"},
		{"rojo-rbx/rojo", "rojo-rbx", "rojo"},
	}
	for _, tc := range cases {
		id, err := ParseID(tc.input)
		require.NoError(t, err, tc.input)
		require.Equal(t, newTestID(tc.author, tc.name), id)
		require.Equal(t, tc.author, id.Author())
		require.Equal(t, tc.name, id.Name())
		require.Equal(t, sources.DefaultArtifactProvider(), id.Provider())
	}
}

func TestParseID_TrimsWhitespace(t *testing.T) {
	want := newTestID("a", "b")
	for _, input := range []string{"a/ b", "a/b ", "a /b", " a/b", "a/ b ", "\ta /\tb\n"} {
		id, err := ParseID(input)
		require.NoError(t, err, input)
		require.True(t, want.Equal(id), input)
		require.Equal(t, "a", id.Author())
		require.Equal(t, "b", id.Name())
	}
}

func TestParseID_Provider(t *testing.T) {
	explicit, err := ParseID("github:a/b")
	require.NoError(t, err)
	require.Equal(t, sources.ArtifactProviderGitHub, explicit.Provider())

	implicit, err := ParseID("a/b")
	require.NoError(t, err)
	require.True(t, explicit.Equal(implicit))
	require.Equal(t, "a/b", explicit.String())

	cased, err := ParseID("GitHub:a/b")
	require.NoError(t, err)
	require.Equal(t, sources.ArtifactProviderGitHub, cased.Provider())
}

func TestParseID_Rejections(t *testing.T) {
	cases := []struct {
		input string
		kind  error
		value string
	}{
		{"", ErrEmptyID, ""},
		{"/", ErrInvalidAuthor, ""},
		{"a/", ErrInvalidName, ""},
		{"/b", ErrInvalidAuthor, ""},
		{" /b", ErrInvalidAuthor, ""},
		{"a/ ", ErrInvalidName, ""},
		{"a/b/", ErrInvalidName, "b/"},
		{"a/b/c", ErrInvalidName, "b/c"},
		{"ab", ErrMissingSeparator, ""},
		{"github:ab", ErrMissingSeparator, ""},
		{":a/b", ErrInvalidProvider, ""},
		{"unknown:a/b", ErrInvalidProvider, "unknown"},
		{"hubgit:a/b", ErrInvalidProvider, "hubgit"},
		{"bitbab:a/b", ErrInvalidProvider, "bitbab"},
		{"a/b:c", ErrInvalidName, "b:c"},
		{"a b/c", ErrInvalidAuthor, "a b"},
		{"a/b@1.0.0", ErrInvalidName, "b@1.0.0"},
		{`a\b/c`, ErrInvalidAuthor, `a\b`},
	}
	for _, tc := range cases {
		_, err := ParseID(tc.input)
		require.Error(t, err, tc.input)
		require.ErrorIs(t, err, tc.kind, tc.input)

		var parseErr *IDParseError
		require.True(t, errors.As(err, &parseErr), tc.input)
		require.Equal(t, tc.value, parseErr.Value, tc.input)
		require.Equal(t, tc.input, parseErr.Input)
	}
}

func TestParseID_ErrorMessages(t *testing.T) {
	_, err := ParseID("")
	require.EqualError(t, err, "tool id is empty")

	_, err = ParseID("ab")
	require.EqualError(t, err, "missing '/' separator")

	_, err = ParseID("unknown:a/b")
	require.EqualError(t, err, "artifact provider 'unknown' is invalid")
	require.ErrorIs(t, err, sources.ErrUnknownProvider)

	_, err = ParseID(":a/b")
	require.ErrorIs(t, err, sources.ErrEmptyProvider)

	_, err = ParseID("/b")
	require.EqualError(t, err, "author '' is empty or invalid")

	_, err = ParseID("a/b/c")
	require.EqualError(t, err, "name 'b/c' is empty or invalid")
}

func TestID_CasePreservation(t *testing.T) {
	require.Equal(t, "author", newTestID("author", "name").Author())
	require.Equal(t, "name", newTestID("author", "name").Name())
	require.Equal(t, "Author", newTestID("Author", "Name").Author())
	require.Equal(t, "Name", newTestID("Author", "Name").Name())

	id := MustParseID("Author/Name")
	require.Equal(t, "Author", id.Author())
	require.Equal(t, "Name", id.Name())
	require.Equal(t, "Author/Name", id.String())
	require.True(t, id.Equal(MustParseID("author/name")))
}

func TestID_CaseInsensitiveEquality(t *testing.T) {
	require.True(t, newTestID("a", "b").Equal(newTestID("A", "B")))
	require.True(t, newTestID("author", "name").Equal(newTestID("Author", "Name")))
	require.True(t, newTestID("123abc456", "78de90").Equal(newTestID("123ABC456", "78DE90")))
	require.False(t, newTestID("a", "b").Equal(newTestID("a", "c")))
	require.False(t, newTestID("ab", "c").Equal(newTestID("a", "bc")))
}

func TestID_EqualityIgnoresProvider(t *testing.T) {
	other := newID(sources.ArtifactProvider(7), "a", "b")
	id := newTestID("A", "B")
	require.True(t, id.Equal(other))
	require.Equal(t, 0, id.Compare(other))
	require.Equal(t, id.Key(), other.Key())
}

func TestID_CaseInsensitiveOrdering(t *testing.T) {
	require.Equal(t, 0, newTestID("a", "b").Compare(newTestID("A", "B")))
	require.Equal(t, 0, newTestID("author", "name").Compare(newTestID("Author", "Name")))
	require.Equal(t, -1, newTestID("a", "z").Compare(newTestID("B", "a")))
	require.Equal(t, 1, newTestID("b", "a").Compare(newTestID("A", "z")))
	require.Equal(t, -1, newTestID("a", "B").Compare(newTestID("A", "c")))
}

func TestID_SortsDeterministically(t *testing.T) {
	ids := []ID{
		MustParseID("Zeta/tool"),
		MustParseID("alpha/Zed"),
		MustParseID("Alpha/beta"),
		MustParseID("mid/x"),
	}
	slices.SortFunc(ids, ID.Compare)

	got := make([]string, 0, len(ids))
	for _, id := range ids {
		got = append(got, id.String())
	}
	want := []string{"Alpha/beta", "alpha/Zed", "mid/x", "Zeta/tool"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sorted ids mismatch (-want +got):\n%s", diff)
	}
}

func TestID_HashableByKey(t *testing.T) {
	index := make(map[Key]int)
	index[newTestID("a", "b").Key()] = 1
	index[newTestID("author", "name").Key()] = 2
	index[newTestID("123abc456", "78de90").Key()] = 3
	index[MustParseID("Mixed/Case").Key()] = 4
	require.Equal(t, 1, index[newTestID("A", "B").Key()])
	require.Equal(t, 2, index[newTestID("Author", "Name").Key()])
	require.Equal(t, 3, index[newTestID("123ABC456", "78DE90").Key()])
	require.Equal(t, 4, index[MustParseID("mixed/case").Key()])
}

func TestID_KeyIsTheOnlyMapKey(t *testing.T) {
	require.False(t, reflect.TypeOf(ID{}).Comparable())
	require.True(t, reflect.TypeOf(Key{}).Comparable())

	upper, lower := MustParseID("A/B"), MustParseID("a/b")
	require.True(t, upper.Equal(lower))
	require.Equal(t, upper.Key(), lower.Key())

	index := map[Key]ID{upper.Key(): upper}
	stored, ok := index[lower.Key()]
	require.True(t, ok)
	require.Equal(t, "A/B", stored.String())
}

func TestID_MapLookupScenario(t *testing.T) {
	var m Map[int]
	m.Set(MustParseID("a/b"), 1)
	m.Set(MustParseID("Author/Name"), 2)

	v, ok := m.Get(MustParseID("A/B"))
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = m.Get(MustParseID("AUTHOR/NAME"))
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestID_ASCIIOnlyFolding(t *testing.T) {
	upper := MustParseID("ÄUTHOR/NAME")
	lower := MustParseID("äuthor/name")
	require.False(t, upper.Equal(lower))
	require.Equal(t, "Äuthor", upper.Key().Author)
	require.True(t, upper.Equal(MustParseID("Äuthor/name")))
}

func TestID_ZeroValue(t *testing.T) {
	var id ID
	require.True(t, id.IsZero())
	require.False(t, MustParseID("a/b").IsZero())

	_, err := id.MarshalText()
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestID_IntoSpecAndAlias(t *testing.T) {
	id := MustParseID("rojo-rbx/Rojo")
	spec := id.IntoSpec(MustParseVersion("7.4.1"))
	require.True(t, spec.ID().Equal(id))
	require.Equal(t, "7.4.1", spec.Version().String())
	require.Equal(t, "rojo-rbx/Rojo@7.4.1", spec.String())

	alias := id.IntoAlias()
	require.Equal(t, "Rojo", alias.Name())
	require.Equal(t, "rojo", alias.Key())
}

func TestMustParseIDPanics(t *testing.T) {
	require.Panics(t, func() { MustParseID("nope") })
}

func TestIsInvalidIdentifier(t *testing.T) {
	for _, s := range []string{"", "a/b", `a\b`, "a:b", "a@b", "a b", "a\tb", "a\x00b", "\xff"} {
		require.True(t, IsInvalidIdentifier(s), "%q", s)
	}
	for _, s := range []string{"a", "rojo-rbx", "tool_name", "v1.2", "Ünïcødé"} {
		require.False(t, IsInvalidIdentifier(s), "%q", s)
	}
}

func TestASCIILower(t *testing.T) {
	require.Equal(t, "abc", asciiLower("ABC"))
	require.Equal(t, "already", asciiLower("already"))
	require.Equal(t, "Ää", asciiLower("Ää"))
	require.Equal(t, "kelvinK", asciiLower("KELVINK"))
}
