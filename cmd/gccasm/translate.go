package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/sarchlab/gccasm/diag"
	"github.com/sarchlab/gccasm/emit"
)

func (a *app) translateCommand() *cobra.Command {
	var (
		expr     string
		format   formatValue
		rewriter rewriterValue
	)

	cmd := &cobra.Command{
		Use:   "translate [FILE]",
		Short: "translate one construct",
		Long: `Translates the extended assembly construct read from FILE, from -e, or from
standard input. The construct may be wrapped in an invocation such as
gcc_asm!( ... ).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("format") {
				a.cfg.Output.Format = format.String()
			}
			if flags.Changed("rewriter") {
				a.cfg.Translate.Rewriter = rewriter.String()
			}

			name, src, err := a.readInput(args, expr, flags.Changed("expr"))
			if err != nil {
				return err
			}

			tr, err := a.translator()
			if err != nil {
				return err
			}

			b, err := tr.TranslateSource(name, src)
			if err != nil {
				diag.Render(a.stderr, src, diag.FromError("", err))
				return &exitError{code: exitFailure, err: errReported}
			}

			f, err := emit.ParseFormat(a.cfg.Output.Format)
			if err != nil {
				return &exitError{code: exitConfig, err: err}
			}

			return errors.Wrap(emit.Write(a.stdout, f, []emit.Result{emit.NewResult("", b)}),
				"writing output")
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&expr, "expr", "e", "", "Construct source given on the command line")
	addFormatFlag(flags, &format)
	flags.Var(&rewriter, "rewriter", "Placeholder rewriter: scan or replace")

	return cmd
}
