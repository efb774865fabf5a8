package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rokit/internal/app"
)

type checkArgs struct {
	watch bool
}

func newCheckCmd(opts *cliOptions) *cobra.Command {
	args := &checkArgs{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate files listing tool ids (text, .json or .toml)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			reports, err := opts.app.Check(ctx, files)
			if err != nil {
				return err
			}
			if err := printReports(opts.stdout, reports, opts.settings.JSONOutput()); err != nil {
				return err
			}
			if !args.watch {
				if !allOK(reports) {
					return exitSilent(exitCodeIssues)
				}
				return nil
			}

			opts.logger.Info("watching id lists", zap.Strings("paths", files))
			return opts.app.Watch(ctx, app.WatchConfig{
				Paths:    files,
				Debounce: opts.settings.WatchDebounce,
				OnReport: func(report app.FileReport) {
					if err := printReports(opts.stdout, []app.FileReport{report}, opts.settings.JSONOutput()); err != nil {
						opts.logger.Warn("print report failed", zap.Error(err))
					}
				},
			})
		},
	}
	cmd.Flags().BoolVar(&args.watch, "watch", false, "recheck files whenever they change")
	return cmd
}

func allOK(reports []app.FileReport) bool {
	for _, report := range reports {
		if !report.OK() {
			return false
		}
	}
	return true
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
