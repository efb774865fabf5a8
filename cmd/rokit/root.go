package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rokit/internal/app"
	"rokit/internal/infra/paths"
	"rokit/internal/infra/settings"
)

type cliOptions struct {
	configPath string
	output     string
	logLevel   string
	jsonOutput bool

	settings settings.Settings
	logger   *zap.Logger
	app      *app.App
	stdout   io.Writer
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{
		output:   settings.DefaultOutput,
		logLevel: settings.DefaultLogLevel,
		logger:   zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "rokit",
		Short:         "Inspect and validate rokit tool identifiers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file (default <rokit home>/config.yaml)")
	root.PersistentFlags().StringVar(&opts.output, "output", opts.output, "output format (text or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "shorthand for --output json")

	root.AddCommand(
		newParseCmd(opts),
		newSortCmd(opts),
		newCheckCmd(opts),
	)
	return root
}

func (o *cliOptions) init(cmd *cobra.Command) error {
	o.stdout = cmd.OutOrStdout()
	loadOpts := settings.Options{
		Path:     o.configPath,
		Required: o.configPath != "",
		Flags:    cmd.Flags(),
		FlagKeys: map[string]string{
			"output":    "output",
			"log-level": "logLevel",
		},
	}
	if loadOpts.Path == "" {
		if home, err := paths.Home(); err == nil {
			loadOpts.Path = paths.ConfigFile(home)
		}
	}

	resolved, err := settings.Load(loadOpts)
	if err != nil {
		return err
	}
	if o.jsonOutput {
		resolved.Output = settings.OutputJSON
	}
	o.settings = resolved

	logger, err := newLogger(resolved)
	if err != nil {
		return err
	}
	o.logger = logger
	o.app = app.New(logger)
	if resolved.ConfigFile != "" {
		logger.Debug("config loaded", zap.String("path", resolved.ConfigFile))
	}
	return nil
}

func newLogger(s settings.Settings) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(s.LogLevel)
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}
