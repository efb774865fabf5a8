package tool

import (
	"fmt"
	"strings"
)

// Alias is the short, case-insensitive name a tool is invoked by locally.
type Alias struct {
	cased   string
	uncased string
}

func ParseAlias(s string) (Alias, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Alias{}, ErrEmptyAlias
	}
	if IsInvalidIdentifier(trimmed) {
		return Alias{}, fmt.Errorf("%w: '%s'", ErrInvalidAlias, trimmed)
	}
	return newAlias(trimmed), nil
}

func newAlias(name string) Alias {
	return Alias{cased: name, uncased: asciiLower(name)}
}

// Name returns the alias in its original case.
func (a Alias) Name() string {
	return a.cased
}

// Key returns the lowercased alias, suitable as a map key.
func (a Alias) Key() string {
	return a.uncased
}

func (a Alias) IsZero() bool {
	return a.cased == ""
}

func (a Alias) Equal(other Alias) bool {
	return a.uncased == other.uncased
}

func (a Alias) Compare(other Alias) int {
	return strings.Compare(a.uncased, other.uncased)
}

func (a Alias) String() string {
	return a.cased
}

func (a Alias) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return nil, ErrEmptyAlias
	}
	return []byte(a.cased), nil
}

func (a *Alias) UnmarshalText(text []byte) error {
	parsed, err := ParseAlias(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
