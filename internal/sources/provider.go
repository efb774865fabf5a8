package sources

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyProvider   = errors.New("artifact provider is empty")
	ErrUnknownProvider = errors.New("unknown artifact provider")
)

// ArtifactProvider identifies a supported artifact hosting backend.
type ArtifactProvider int

const (
	ArtifactProviderGitHub ArtifactProvider = iota
)

// DefaultArtifactProvider returns the provider used when none is given.
func DefaultArtifactProvider() ArtifactProvider {
	return ArtifactProviderGitHub
}

// ArtifactProviders lists every known provider.
func ArtifactProviders() []ArtifactProvider {
	return []ArtifactProvider{ArtifactProviderGitHub}
}

// ParseArtifactProvider parses a provider tag, ignoring ASCII case and surrounding whitespace.
func ParseArtifactProvider(s string) (ArtifactProvider, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, ErrEmptyProvider
	}
	for _, provider := range ArtifactProviders() {
		if strings.EqualFold(trimmed, provider.String()) && isASCII(trimmed) {
			return provider, nil
		}
	}
	return 0, fmt.Errorf("%w '%s'", ErrUnknownProvider, trimmed)
}

func (p ArtifactProvider) String() string {
	switch p {
	case ArtifactProviderGitHub:
		return "github"
	default:
		return fmt.Sprintf("provider(%d)", int(p))
	}
}

// DisplayName returns the human-facing name of the provider.
func (p ArtifactProvider) DisplayName() string {
	switch p {
	case ArtifactProviderGitHub:
		return "GitHub"
	default:
		return p.String()
	}
}

// Valid reports whether p is one of the known providers.
func (p ArtifactProvider) Valid() bool {
	for _, provider := range ArtifactProviders() {
		if p == provider {
			return true
		}
	}
	return false
}

func (p ArtifactProvider) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownProvider, p.String())
	}
	return []byte(p.String()), nil
}

func (p *ArtifactProvider) UnmarshalText(text []byte) error {
	parsed, err := ParseArtifactProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// strings.EqualFold also folds non-ASCII lookalikes such as the Kelvin sign.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
