package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/gccasm/batch"
	"github.com/sarchlab/gccasm/diag"
	"github.com/sarchlab/gccasm/emit"
)

func (a *app) batchCommand() *cobra.Command {
	var format formatValue

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "translate every construct of a YAML batch file",
		Long: `Translates the named constructs listed in FILE. Results of the constructs that
translate are written to standard output; failures are reported on standard
error and make the command exit with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format.String()
			}

			f, err := batch.LoadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "loading batch")
			}

			tr, err := a.translator()
			if err != nil {
				return err
			}

			out, err := emit.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return &exitError{code: exitConfig, err: err}
			}

			c := batch.NewCollector()
			runErr := batch.Run(tr, f, c)

			if err := emit.Write(a.stdout, out, c.Results); err != nil {
				return errors.Wrap(err, "writing output")
			}

			a.logger.Debug("batch finished",
				"file", args[0],
				"translated", c.Report.Translated,
				"failed", len(c.Report.Issues))

			if runErr == nil {
				return nil
			}

			for _, issue := range c.Report.Issues {
				diag.Render(a.stderr, c.Sources[issue.Construct], issue)
			}
			c.Report.WriteReport(a.stderr)

			return &exitError{code: exitFailure, err: errReported}
		},
	}

	addFormatFlag(cmd.Flags(), &format)

	return cmd
}
