// Package token defines the lexical units an extended-assembly construct is
// made of.
//
// Tokens are mostly opaque. The translator only looks at string literals,
// the ':' and ',' separators and bracket-delimited groups; everything else is
// carried through to the output unchanged.
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind describes the nature of a token.
type Kind uint8

const (
	Invalid Kind = iota // reserved zero value
	Ident
	Int
	Float
	Char
	String // Text holds the unquoted value
	Punct  // a single punctuation character
	Group  // a delimited group, see Delim and Children
)

func (k Kind) String() string {
	if int(k) < len(kindString) {
		return kindString[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

var kindString = [...]string{
	Invalid: "invalid",
	Ident:   "ident",
	Int:     "int",
	Float:   "float",
	Char:    "char",
	String:  "string",
	Punct:   "punct",
	Group:   "group",
}

// Delim is the delimiter pair of a Group token.
type Delim uint8

const (
	NoDelim Delim = iota
	Paren
	Bracket
	Brace
)

// Open returns the opening character of the delimiter pair.
func (d Delim) Open() string {
	switch d {
	case Paren:
		return "("
	case Bracket:
		return "["
	case Brace:
		return "{"
	}
	return ""
}

// Close returns the closing character of the delimiter pair.
func (d Delim) Close() string {
	switch d {
	case Paren:
		return ")"
	case Bracket:
		return "]"
	case Brace:
		return "}"
	}
	return ""
}

// Pos is a position in the source text. Line and Column are 1-based; a zero
// Line means the position is unknown.
type Pos struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Token is an atomic lexical unit or a delimited group of them.
type Token struct {
	Kind     Kind
	Text     string
	Pos      Pos
	Delim    Delim
	Children []Token
}

// NewString returns a string literal token holding s.
func NewString(s string) Token {
	return Token{Kind: String, Text: s}
}

// NewPunct returns a punctuation token.
func NewPunct(p string) Token {
	return Token{Kind: Punct, Text: p}
}

// NewGroup returns a group token.
func NewGroup(d Delim, children ...Token) Token {
	return Token{Kind: Group, Delim: d, Children: children}
}

// IsPunct reports whether t is the punctuation p.
func (t Token) IsPunct(p string) bool {
	return t.Kind == Punct && t.Text == p
}

// IsGroup reports whether t is a group delimited by d.
func (t Token) IsGroup(d Delim) bool {
	return t.Kind == Group && t.Delim == d
}

// String renders the token the way it would appear in source.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return strconv.Quote(t.Text)
	case Group:
		return t.Delim.Open() + Format(t.Children) + t.Delim.Close()
	}
	return t.Text
}

// Format renders a token sequence as source text. A single space separates two
// adjacent word-like tokens; everything else is joined without spaces.
func Format(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 && needsSpace(tokens[i-1], t) {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func needsSpace(prev, next Token) bool {
	if prev.IsPunct(",") || prev.IsPunct(":") || next.IsPunct(":") {
		return true
	}
	return isWord(prev) && isWord(next)
}

func isWord(t Token) bool {
	switch t.Kind {
	case Ident, Int, Float, Char, String:
		return true
	}
	return false
}

// Split divides tokens on every top-level punctuation sep. seps[i] is the
// separator that ended parts[i], so len(seps) == len(parts)-1. Split of an
// empty sequence yields no parts; a sequence without separators yields
// exactly one.
func Split(tokens []Token, sep string) (parts [][]Token, seps []Token) {
	if len(tokens) == 0 {
		return nil, nil
	}

	start := 0
	for i, t := range tokens {
		if t.IsPunct(sep) {
			parts = append(parts, tokens[start:i])
			seps = append(seps, t)
			start = i + 1
		}
	}

	return append(parts, tokens[start:]), seps
}
