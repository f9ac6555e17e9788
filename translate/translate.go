// Package translate rewrites GCC-style extended assembly into the target
// construct dialect.
//
// A construct has the shape
//
//	"template" ... : outputs : inputs : clobbers
//
// The template uses %N, %[name], %% and %= placeholders; operands may carry
// [name] aliases and read-write "+" constraints. The result uses $N, $$ and
// ${:uid}, positional operands only, and an explicit input for every
// read-write output.
package translate

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/gccasm/lexer"
	"github.com/sarchlab/gccasm/token"
)

// Translator translates constructs. It holds no state between calls and may
// be used from several goroutines.
type Translator struct {
	uid      string
	rewriter Rewriter
	logger   *slog.Logger
}

// Translate translates one construct with the default settings.
func Translate(tokens []token.Token) (*Block, error) {
	return NewBuilder().Build().Translate(tokens)
}

// Translate translates the tokens of one construct. On failure no block is
// returned and the error is a *SyntaxError.
func (t *Translator) Translate(tokens []token.Token) (*Block, error) {
	sec, err := split(tokens)
	if err != nil {
		return nil, err
	}
	t.trace("split",
		"template", len(sec.parts[sectionTemplate]),
		"outputs", len(sec.parts[sectionOutputs]),
		"inputs", len(sec.parts[sectionInputs]))

	tmpl, err := assembleTemplate(sec.parts[sectionTemplate])
	if err != nil {
		return nil, err
	}
	t.trace("template", "text", tmpl.text, "fragments", len(tmpl.fragments))

	outputs, err := parseOperands(sec.parts[sectionOutputs], sectionOutputs, sec.start[sectionOutputs])
	if err != nil {
		return nil, err
	}
	inputs, err := parseOperands(sec.parts[sectionInputs], sectionInputs, sec.start[sectionInputs])
	if err != nil {
		return nil, err
	}
	if err := checkDuplicateNames(outputs, inputs); err != nil {
		return nil, err
	}

	outputs, tied := expandTied(outputs)
	t.trace("operands", "outputs", len(outputs), "inputs", len(inputs), "tied", len(tied))

	// Names of explicit operands keep their indices; tied inputs come last
	// and have no names.
	names := append(namesOf(outputs), namesOf(inputs)...)
	names = append(names, make(NameTable, len(tied))...)
	inputs = append(inputs, tied...)

	if len(names) != len(outputs)+len(inputs) {
		return nil, fmt.Errorf("name table has %d entries for %d operands",
			len(names), len(outputs)+len(inputs))
	}

	text, err := t.rewrite(tmpl, names)
	if err != nil {
		return nil, err
	}
	t.trace("rewrite", "rewriter", t.rewriter, "text", text)

	return assemble(text, outputs, inputs, sec.start[sectionTemplate]), nil
}

// TranslateSource lexes src and translates it. A surrounding invocation such
// as `gcc_asm!( ... )` is accepted and stripped.
func (t *Translator) TranslateSource(filename, src string) (*Block, error) {
	tokens, err := lexer.Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return t.Translate(lexer.StripInvocation(tokens))
}

func (t *Translator) rewrite(tmpl template, names NameTable) (string, error) {
	switch t.rewriter {
	case RewriteReplace:
		return rewriteReplace(tmpl, names, t.uid)
	default:
		return rewriteScan(tmpl, names, t.uid)
	}
}
