package main

import (
	"github.com/spf13/pflag"

	"github.com/sarchlab/gccasm/emit"
	"github.com/sarchlab/gccasm/translate"
)

var (
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*rewriterValue)(nil)
)

type formatValue struct{ f emit.Format }

func (v *formatValue) String() string { return string(v.f) }

func (v *formatValue) Set(s string) error {
	f, err := emit.ParseFormat(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}

func (v *formatValue) Type() string { return "format" }

type rewriterValue struct{ r translate.Rewriter }

func (v *rewriterValue) String() string { return v.r.String() }

func (v *rewriterValue) Set(s string) error {
	r, err := translate.ParseRewriter(s)
	if err != nil {
		return err
	}
	v.r = r
	return nil
}

func (v *rewriterValue) Type() string { return "rewriter" }

// addFormatFlag registers --format, which overrides the configured output
// format when given.
func addFormatFlag(flags *pflag.FlagSet, v *formatValue) {
	v.f = emit.FormatAsm
	flags.Var(v, "format", "Output format: asm, json, yaml or table")
}
