package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgerlab/internal/report"
	"github.com/cleared-dev/ledgerlab/internal/steps"
)

func newKeyCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "key [step]",
		Short: "Print the answer key of one step, or of every step",
		Long: `Print the expected answers derived from the activity.

A step is given by number (1-10) or name, e.g. "journal" or "worksheet".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			which := steps.All
			if len(args) > 0 {
				step, err := steps.ParseStep(args[0])
				if err != nil {
					return err
				}
				which = []steps.Step{step}
			}

			data, err := a.activity()
			if err != nil {
				return err
			}

			keys := make(map[string]any, len(which))
			r := report.New(cmd.OutOrStdout())
			for _, step := range which {
				key, err := steps.Key(data, step)
				if err != nil {
					return err
				}
				if format == formatJSON {
					keys[step.String()] = key
					continue
				}
				if err := r.Key(step, key); err != nil {
					return err
				}
			}
			if format != formatJSON {
				return nil
			}
			if len(which) == 1 {
				return writeJSON(cmd.OutOrStdout(), keys[which[0].String()])
			}
			return writeJSON(cmd.OutOrStdout(), keys)
		},
	}
	addFormatFlag(cmd, &format)

	return cmd
}
