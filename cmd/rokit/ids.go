package main

import (
	"github.com/spf13/cobra"
)

func newParseCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <id>...",
		Short: "Parse tool ids and show their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := opts.app.Parse(args)
			if err != nil {
				return err
			}
			return printParsed(opts.stdout, parsed, opts.settings.JSONOutput())
		},
	}
}

func newSortCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <id>...",
		Short: "Deduplicate tool ids case-insensitively and print them in canonical order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := opts.app.Sort(args)
			if err != nil {
				return err
			}
			return printIDs(opts.stdout, ids, opts.settings.JSONOutput())
		},
	}
}
