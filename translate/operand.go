package translate

import (
	"github.com/sarchlab/gccasm/token"
)

// Operand is a constraint bound to an expression, optionally aliased by a
// symbolic name.
type Operand struct {
	// Name is the symbolic name, empty when the operand has none.
	Name       string
	Constraint string
	// Expr is the parenthesized expression, kept as the group token.
	Expr      []token.Token
	Pos       token.Pos
	Synthetic bool // an input created for a read-write output
}

// Tokens returns the operand in target form: the constraint literal followed
// by the expression. Symbolic names have no target form and are dropped.
func (o Operand) Tokens() []token.Token {
	tokens := make([]token.Token, 0, 1+len(o.Expr))
	tokens = append(tokens, token.NewString(o.Constraint))
	return append(tokens, o.Expr...)
}

func (o Operand) String() string {
	return token.Format(o.Tokens())
}

// ExprString renders the expression without its enclosing parentheses.
func (o Operand) ExprString() string {
	if len(o.Expr) == 1 && o.Expr[0].IsGroup(token.Paren) {
		return token.Format(o.Expr[0].Children)
	}
	return token.Format(o.Expr)
}

// NameTable holds one entry per operand of the combined output and input
// list. An empty entry means the operand has no symbolic name.
type NameTable []string

// Index returns the operand index the name refers to.
func (n NameTable) Index(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i, entry := range n {
		if entry == name {
			return i, true
		}
	}
	return 0, false
}

func namesOf(operands []Operand) NameTable {
	names := make(NameTable, len(operands))
	for i, o := range operands {
		names[i] = o.Name
	}
	return names
}

// parseOperands splits an operand section on its top-level commas. start is
// the position of the section, used when an item has no tokens to point at.
func parseOperands(section []token.Token, which int, start token.Pos) ([]Operand, error) {
	items, seps := token.Split(section, ",")
	operands := make([]Operand, 0, len(items))

	for i, item := range items {
		if len(item) == 0 {
			pos := start
			switch {
			case i > 0:
				pos = seps[i-1].Pos
			case len(seps) > 0:
				pos = seps[0].Pos
			}
			return nil, syntaxErrorf(ErrEmptyOperand, pos,
				"item %d of %s is empty", i, sectionNames[which])
		}

		o, err := parseOperand(item)
		if err != nil {
			return nil, err
		}
		operands = append(operands, o)
	}

	return operands, nil
}

// parseOperand reads `[name] "constraint" (expr)`, the name being optional.
func parseOperand(item []token.Token) (Operand, error) {
	first := item[0]
	o := Operand{Pos: first.Pos}
	rest := item

	if first.Kind == token.Group {
		if !first.IsGroup(token.Bracket) {
			return o, syntaxErrorf(ErrBadOperand, first.Pos,
				"expected a constraint string or [name], found %s", first)
		}
		if len(first.Children) != 1 || first.Children[0].Kind != token.Ident {
			return o, syntaxErrorf(ErrBadSymbolicName, first.Pos,
				"expected a single identifier in %s", first)
		}
		o.Name = first.Children[0].Text
		rest = item[1:]
	}

	if len(rest) == 0 {
		return o, syntaxErrorf(ErrBadOperand, first.Pos,
			"missing constraint after %s", first)
	}
	if rest[0].Kind != token.String {
		return o, syntaxErrorf(ErrBadOperand, rest[0].Pos,
			"expected a constraint string, found %s", rest[0])
	}
	o.Constraint = rest[0].Text

	if len(rest) != 2 || !rest[1].IsGroup(token.Paren) {
		return o, syntaxErrorf(ErrBadOperand, rest[0].Pos,
			"expected a parenthesized expression after %s", rest[0])
	}
	if len(rest[1].Children) == 0 {
		return o, syntaxErrorf(ErrBadOperand, rest[1].Pos, "empty expression")
	}
	o.Expr = rest[1:]

	return o, nil
}

func checkDuplicateNames(operands ...[]Operand) error {
	seen := make(map[string]bool)
	for _, list := range operands {
		for _, o := range list {
			if o.Name == "" {
				continue
			}
			if seen[o.Name] {
				return syntaxErrorf(ErrDuplicateSymbolicName, o.Pos, "%s", o.Name)
			}
			seen[o.Name] = true
		}
	}
	return nil
}
