package main

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sarchlab/gccasm/diag"
	"github.com/sarchlab/gccasm/lexer"
	"github.com/sarchlab/gccasm/token"
)

func (a *app) tokensCommand() *cobra.Command {
	var expr string

	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "print the tokens the translator sees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src, err := a.readInput(args, expr, cmd.Flags().Changed("expr"))
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(name, src)
			if err != nil {
				diag.Render(a.stderr, src, diag.FromError("", err))
				return &exitError{code: exitFailure, err: errReported}
			}

			writeTokens(a.stdout, tokens)
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "Source given on the command line")

	return cmd
}

// writeTokens prints one row per token. Group contents are indented below
// their opening delimiter.
func writeTokens(w io.Writer, tokens []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Pos", "Kind", "Text"})

	var walk func(tokens []token.Token, depth int)
	walk = func(tokens []token.Token, depth int) {
		indent := strings.Repeat("  ", depth)
		for _, tok := range tokens {
			if tok.Kind != token.Group {
				t.AppendRow(table.Row{tok.Pos.String(), tok.Kind.String(), indent + tok.String()})
				continue
			}
			t.AppendRow(table.Row{tok.Pos.String(), tok.Kind.String(), indent + tok.Delim.Open()})
			walk(tok.Children, depth+1)
			t.AppendRow(table.Row{"", "", indent + tok.Delim.Close()})
		}
	}
	walk(tokens, 0)

	t.Render()
}
