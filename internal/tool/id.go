package tool

import (
	"strings"

	"rokit/internal/sources"
)

// ID identifies a tool by author and name, independent of its version.
//
// Author and name keep their original case for display, but equality,
// ordering and Key are case-insensitive (ASCII only). The provider does not
// take part in identity, and String never renders it.
//
// ID is not comparable: use Key as the map key and Equal or Compare for identity.
type ID struct {
	_ [0]func()

	provider      sources.ArtifactProvider
	casedAuthor   string
	casedName     string
	uncasedAuthor string
	uncasedName   string
}

// Key is the comparable identity of an ID, suitable as a map key.
type Key struct {
	Author string
	Name   string
}

// ParseID parses text of the form [provider:]author/name.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, idParseError(ErrEmptyID, s, "", nil)
	}

	provider := sources.DefaultArtifactProvider()
	rest := s
	slash := strings.IndexByte(s, '/')
	if colon := strings.IndexByte(s, ':'); colon >= 0 && (slash < 0 || colon < slash) {
		tag := s[:colon]
		parsed, err := sources.ParseArtifactProvider(tag)
		if err != nil {
			return ID{}, idParseError(ErrInvalidProvider, s, tag, err)
		}
		provider = parsed
		rest = s[colon+1:]
	}

	before, after, ok := strings.Cut(rest, "/")
	if !ok {
		return ID{}, idParseError(ErrMissingSeparator, s, "", nil)
	}
	before = strings.TrimSpace(before)
	after = strings.TrimSpace(after)

	if IsInvalidIdentifier(before) {
		return ID{}, idParseError(ErrInvalidAuthor, s, before, nil)
	}
	if IsInvalidIdentifier(after) {
		return ID{}, idParseError(ErrInvalidName, s, after, nil)
	}
	return newID(provider, before, after), nil
}

// MustParseID is like ParseID but panics on error. Intended for tests and constants.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func newID(provider sources.ArtifactProvider, author, name string) ID {
	return ID{
		provider:      provider,
		casedAuthor:   author,
		casedName:     name,
		uncasedAuthor: asciiLower(author),
		uncasedName:   asciiLower(name),
	}
}

// Provider returns the artifact provider the id was parsed with.
func (id ID) Provider() sources.ArtifactProvider {
	return id.provider
}

// Author returns the author in its original case.
func (id ID) Author() string {
	return id.casedAuthor
}

// Name returns the tool name in its original case.
func (id ID) Name() string {
	return id.casedName
}

// IsZero reports whether id is the zero value, which no successful parse produces.
func (id ID) IsZero() bool {
	return id.casedAuthor == "" && id.casedName == ""
}

// Key returns the lowercased author and name.
func (id ID) Key() Key {
	return Key{Author: id.uncasedAuthor, Name: id.uncasedName}
}

// Equal reports whether both ids name the same tool, ignoring ASCII case and provider.
func (id ID) Equal(other ID) bool {
	return id.Key() == other.Key()
}

// Compare orders ids by lowercased author, then lowercased name.
func (id ID) Compare(other ID) int {
	return id.Key().Compare(other.Key())
}

func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.Author, other.Author); c != 0 {
		return c
	}
	return strings.Compare(k.Name, other.Name)
}

func (k Key) String() string {
	return k.Author + "/" + k.Name
}

// String renders author/name in the original case, without the provider.
func (id ID) String() string {
	return id.casedAuthor + "/" + id.casedName
}

// IntoSpec binds the id to a resolved version.
func (id ID) IntoSpec(version Version) Spec {
	return Spec{id: id, version: version}
}

// IntoAlias relabels the id as an alias named after the tool.
func (id ID) IntoAlias() Alias {
	return newAlias(id.casedName)
}

func (id ID) MarshalText() ([]byte, error) {
	if id.IsZero() {
		return nil, ErrEmptyID
	}
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
