package paths

import (
	"os"
	"path/filepath"
	"strings"

	"rokit/internal/domain"
)

const (
	// EnvRoot overrides the rokit home directory.
	EnvRoot = "ROKIT_ROOT"

	homeDirName    = ".rokit"
	configFileName = "config.yaml"
)

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

// Home returns the rokit home directory: $ROKIT_ROOT, or ~/.rokit.
func Home() (string, error) {
	if root := strings.TrimSpace(os.Getenv(EnvRoot)); root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			return abs, nil
		}
		return root, nil
	}
	home, err := userHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", domain.HomeNotFound("resolve home")
	}
	return filepath.Join(home, homeDirName), nil
}

// ConfigFile returns the default config file path inside home.
func ConfigFile(home string) string {
	return filepath.Join(home, configFileName)
}
