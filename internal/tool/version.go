package tool

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a resolved semantic version such as 1.2.3 or 0.4.0-rc.1.
type Version struct {
	// canonical carries the leading "v" required by x/mod/semver.
	canonical string
}

// ParseVersion parses a semantic version, with or without a leading "v".
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}
	candidate := trimmed
	if candidate[0] != 'v' && candidate[0] != 'V' {
		candidate = "v" + candidate
	} else {
		candidate = "v" + candidate[1:]
	}
	// x/mod/semver accepts shorthands like v1 and v1.2; a resolved version must be complete.
	if !semver.IsValid(candidate) || strings.Count(versionCore(candidate), ".") != 2 {
		return Version{}, fmt.Errorf("%w: '%s'", ErrInvalidVersion, trimmed)
	}
	return Version{canonical: candidate}, nil
}

func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func versionCore(v string) string {
	core := v
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	return core
}

func (v Version) IsZero() bool {
	return v.canonical == ""
}

// String renders the version without the leading "v".
func (v Version) String() string {
	return strings.TrimPrefix(v.canonical, "v")
}

// Prerelease returns the prerelease suffix including the leading '-', or "".
func (v Version) Prerelease() string {
	return semver.Prerelease(v.canonical)
}

// Compare orders versions by semver precedence; build metadata is ignored.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.canonical, other.canonical)
}

func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

func (v Version) MarshalText() ([]byte, error) {
	if v.IsZero() {
		return nil, fmt.Errorf("%w: empty", ErrInvalidVersion)
	}
	return []byte(v.String()), nil
}

func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
