package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"rokit/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(Options{Path: filepath.Join(t.TempDir(), "config.yaml")})
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, s.LogLevel)
	require.Equal(t, OutputText, s.Output)
	require.False(t, s.JSONOutput())
	require.Equal(t, 200*time.Millisecond, s.WatchDebounce)
	require.Empty(t, s.ConfigFile)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "logLevel: debug\noutput: JSON\nwatchDebounceMillis: 50\n")

	s, err := Load(Options{Path: path})
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, s.LogLevel)
	require.True(t, s.JSONOutput())
	require.Equal(t, 50*time.Millisecond, s.WatchDebounce)
	require.Equal(t, path, s.ConfigFile)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "logLevel: debug\n")
	t.Setenv("ROKIT_LOGLEVEL", "error")

	s, err := Load(Options{Path: path})
	require.NoError(t, err)
	require.Equal(t, zapcore.ErrorLevel, s.LogLevel)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	path := writeConfig(t, "output: json\n")
	t.Setenv("ROKIT_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", DefaultOutput, "")
	flags.String("log-level", DefaultLogLevel, "")
	require.NoError(t, flags.Parse([]string{"--output", "text"}))

	s, err := Load(Options{
		Path:     path,
		Flags:    flags,
		FlagKeys: map[string]string{"output": "output", "log-level": "logLevel"},
	})
	require.NoError(t, err)
	require.Equal(t, OutputText, s.Output)
	require.Equal(t, zapcore.WarnLevel, s.LogLevel)
}

func TestLoadRequiredMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := Load(Options{Path: path, Required: true})
	require.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestLoadInvalidValues(t *testing.T) {
	_, err := Load(Options{Path: writeConfig(t, "output: xml\n")})
	require.ErrorIs(t, err, ErrInvalidOutput)

	_, err = Load(Options{Path: writeConfig(t, "logLevel: loud\n")})
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = Load(Options{Path: writeConfig(t, "watchDebounceMillis: 0\n")})
	require.ErrorIs(t, err, ErrInvalidDebounce)

	_, err = Load(Options{Path: writeConfig(t, "logLevel: [\n")})
	require.Error(t, err)
}
