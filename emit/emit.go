// Package emit renders translated blocks for the outside world.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/sarchlab/gccasm/token"
	"github.com/sarchlab/gccasm/translate"
)

// Macro is the invocation the target construct is wrapped in.
const Macro = "asm!"

// Format is an output format.
type Format string

const (
	FormatAsm   Format = "asm"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

var formats = []Format{FormatAsm, FormatJSON, FormatYAML, FormatTable}

// ParseFormat checks that s names a known format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatAsm, nil
	}
	if lo.Contains(formats, f) {
		return f, nil
	}

	names := lo.Map(formats, func(f Format, _ int) string { return string(f) })
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Asm renders the block as a target construct invocation.
func Asm(b *translate.Block) string {
	return Macro + "(" + token.Format(b.Tokens()) + ")"
}

// Operand is the serialized form of a translated operand.
type Operand struct {
	Constraint string `json:"constraint" yaml:"constraint"`
	Expr       string `json:"expr" yaml:"expr"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	Tied       bool   `json:"tied,omitempty" yaml:"tied,omitempty"`
}

// Result is the serialized form of a translated block.
type Result struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Template string    `json:"template" yaml:"template"`
	Outputs  []Operand `json:"outputs" yaml:"outputs"`
	Inputs   []Operand `json:"inputs" yaml:"inputs"`
	Clobbers []string  `json:"clobbers" yaml:"clobbers"`
	Volatile bool      `json:"volatile" yaml:"volatile"`
	Asm      string    `json:"asm" yaml:"asm"`
}

// NewResult converts a block. name identifies the construct and may be empty.
func NewResult(name string, b *translate.Block) Result {
	return Result{
		Name:     name,
		Template: b.Template,
		Outputs:  lo.Map(b.Outputs, toOperand),
		Inputs:   lo.Map(b.Inputs, toOperand),
		Clobbers: append([]string{}, b.Clobbers...),
		Volatile: b.Volatile,
		Asm:      Asm(b),
	}
}

func toOperand(o translate.Operand, _ int) Operand {
	return Operand{
		Constraint: o.Constraint,
		Expr:       o.ExprString(),
		Name:       o.Name,
		Tied:       o.Synthetic,
	}
}

// Write renders results in the given format.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatAsm, "":
		for _, r := range results {
			if _, err := fmt.Fprintln(w, r.Asm); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return JSON(w, results)
	case FormatYAML:
		return YAML(w, results)
	case FormatTable:
		Table(w, results)
		return nil
	}

	return fmt.Errorf("unknown output format %q", format)
}
