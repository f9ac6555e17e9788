package translate

import "github.com/sarchlab/gccasm/token"

// OptionVolatile is the option that marks a block volatile.
const OptionVolatile = "volatile"

// Block is a construct in the target dialect.
type Block struct {
	Template string
	Outputs  []Operand
	// Inputs lists the explicit inputs followed by the inputs tied to
	// read-write outputs.
	Inputs   []Operand
	Clobbers []string
	Volatile bool
	Pos      token.Pos
}

func assemble(tmpl string, outputs, inputs []Operand, pos token.Pos) *Block {
	return &Block{
		Template: tmpl,
		Outputs:  outputs,
		Inputs:   inputs,
		Clobbers: []string{},
		Volatile: len(outputs) == 0,
		Pos:      pos,
	}
}

// Options returns the target options of the block.
func (b *Block) Options() []string {
	if b.Volatile {
		return []string{OptionVolatile}
	}
	return nil
}

// Tokens returns the block as a target construct:
//
//	"template" : outputs : inputs : clobbers : options
func (b *Block) Tokens() []token.Token {
	tokens := []token.Token{token.NewString(b.Template), token.NewPunct(":")}
	tokens = appendOperands(tokens, b.Outputs)
	tokens = append(tokens, token.NewPunct(":"))
	tokens = appendOperands(tokens, b.Inputs)
	tokens = append(tokens, token.NewPunct(":"))
	for i, c := range b.Clobbers {
		if i > 0 {
			tokens = append(tokens, token.NewPunct(","))
		}
		tokens = append(tokens, token.NewString(c))
	}
	tokens = append(tokens, token.NewPunct(":"))
	for i, opt := range b.Options() {
		if i > 0 {
			tokens = append(tokens, token.NewPunct(","))
		}
		tokens = append(tokens, token.NewString(opt))
	}
	return tokens
}

func appendOperands(tokens []token.Token, operands []Operand) []token.Token {
	for i, o := range operands {
		if i > 0 {
			tokens = append(tokens, token.NewPunct(","))
		}
		tokens = append(tokens, o.Tokens()...)
	}
	return tokens
}
