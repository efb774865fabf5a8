package tool

import (
	"fmt"
	"strings"
)

// Spec is a tool id bound to a resolved version, rendered as author/name@version.
type Spec struct {
	id      ID
	version Version
}

// ParseSpec parses text of the form [provider:]author/name@version.
func ParseSpec(s string) (Spec, error) {
	if strings.TrimSpace(s) == "" {
		return Spec{}, ErrEmptySpec
	}
	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return Spec{}, ErrMissingVersion
	}
	id, err := ParseID(s[:at])
	if err != nil {
		return Spec{}, err
	}
	version, err := ParseVersion(s[at+1:])
	if err != nil {
		return Spec{}, fmt.Errorf("tool spec '%s': %w", s, err)
	}
	return id.IntoSpec(version), nil
}

func (s Spec) ID() ID {
	return s.id
}

func (s Spec) Version() Version {
	return s.version
}

func (s Spec) IsZero() bool {
	return s.id.IsZero() && s.version.IsZero()
}

// Equal compares the case-insensitive id and the semver version.
func (s Spec) Equal(other Spec) bool {
	return s.id.Equal(other.id) && s.version.Equal(other.version)
}

// Compare orders specs by id, then by version precedence.
func (s Spec) Compare(other Spec) int {
	if c := s.id.Compare(other.id); c != 0 {
		return c
	}
	return s.version.Compare(other.version)
}

// Matches reports whether the spec refers to the given tool, at any version.
func (s Spec) Matches(id ID) bool {
	return s.id.Equal(id)
}

func (s Spec) String() string {
	return s.id.String() + "@" + s.version.String()
}

func (s Spec) MarshalText() ([]byte, error) {
	if s.id.IsZero() || s.version.IsZero() {
		return nil, ErrEmptySpec
	}
	return []byte(s.String()), nil
}

func (s *Spec) UnmarshalText(text []byte) error {
	parsed, err := ParseSpec(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
