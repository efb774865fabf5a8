package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"rokit/internal/domain"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	DefaultLogLevel            = "warn"
	DefaultOutput              = OutputText
	DefaultWatchDebounceMillis = 200

	envPrefix = "ROKIT"
)

var (
	ErrInvalidOutput   = errors.New("invalid output format")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidDebounce = errors.New("watch debounce must be positive")
)

// Settings is the resolved CLI configuration.
type Settings struct {
	LogLevel      zapcore.Level
	Output        string
	WatchDebounce time.Duration
	// ConfigFile is the file that was read, or "" if none was found.
	ConfigFile string
}

func (s Settings) JSONOutput() bool {
	return s.Output == OutputJSON
}

type rawSettings struct {
	LogLevel            string `mapstructure:"logLevel"`
	Output              string `mapstructure:"output"`
	WatchDebounceMillis int    `mapstructure:"watchDebounceMillis"`
}

// Options controls where settings are read from.
type Options struct {
	// Path is the config file. When Required is false a missing file is ignored.
	Path     string
	Required bool
	// Flags are bound over file and environment values when they were set.
	Flags *pflag.FlagSet
	// FlagKeys maps flag names to setting keys.
	FlagKeys map[string]string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("logLevel", DefaultLogLevel)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("watchDebounceMillis", DefaultWatchDebounceMillis)
	return v
}

// Load resolves settings from defaults, the config file, ROKIT_* environment
// variables and flags, in increasing precedence.
func Load(opts Options) (Settings, error) {
	v := newViper()
	configFile := ""

	if path := strings.TrimSpace(opts.Path); path != "" {
		switch _, err := os.Stat(path); {
		case err == nil:
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("read config %s: %w", path, err)
			}
			configFile = path
		case errors.Is(err, fs.ErrNotExist):
			if opts.Required {
				return Settings{}, domain.FileNotFound("settings.load", path)
			}
		default:
			return Settings{}, domain.FromIO("settings.load", err)
		}
	}

	if opts.Flags != nil {
		for flagName, key := range opts.FlagKeys {
			flag := opts.Flags.Lookup(flagName)
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return Settings{}, fmt.Errorf("bind flag %s: %w", flagName, err)
			}
		}
	}

	var raw rawSettings
	if err := v.Unmarshal(&raw); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	settings, err := normalize(raw)
	if err != nil {
		return Settings{}, err
	}
	settings.ConfigFile = configFile
	return settings, nil
}

func normalize(raw rawSettings) (Settings, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(raw.LogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, raw.LogLevel)
	}
	output := strings.ToLower(strings.TrimSpace(raw.Output))
	switch output {
	case OutputText, OutputJSON:
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrInvalidOutput, raw.Output)
	}
	if raw.WatchDebounceMillis <= 0 {
		return Settings{}, fmt.Errorf("%w: %d", ErrInvalidDebounce, raw.WatchDebounceMillis)
	}
	return Settings{
		LogLevel:      level,
		Output:        output,
		WatchDebounce: time.Duration(raw.WatchDebounceMillis) * time.Millisecond,
	}, nil
}
