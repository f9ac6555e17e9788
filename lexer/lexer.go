// Package lexer turns source text into the token model the translator reads.
//
// Strings, identifiers and numbers follow Go's lexical rules, which agree
// with C on everything an extended-assembly construct uses. Parentheses,
// brackets and braces are folded into nested group tokens, so every
// separator the translator sees at the top level really is top level.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/sarchlab/gccasm/token"
)

// Error reports malformed source text.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

type frame struct {
	delim  token.Delim
	open   token.Pos
	tokens []token.Token
}

// Tokenize scans src into a token sequence. filename is only used for
// positions.
func Tokenize(filename, src string) ([]token.Token, error) {
	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Filename = filename
	s.Mode = scanner.GoTokens

	var scanErr *Error
	s.Error = func(s *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = &Error{Pos: position(s.Pos()), Msg: msg}
		}
	}

	stack := []*frame{{}}
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if scanErr != nil {
			return nil, scanErr
		}

		pos := position(s.Position)
		text := s.TokenText()
		top := stack[len(stack)-1]

		switch tok {
		case scanner.Ident:
			top.tokens = append(top.tokens, token.Token{Kind: token.Ident, Text: text, Pos: pos})
		case scanner.Int:
			top.tokens = append(top.tokens, token.Token{Kind: token.Int, Text: text, Pos: pos})
		case scanner.Float:
			top.tokens = append(top.tokens, token.Token{Kind: token.Float, Text: text, Pos: pos})
		case scanner.Char:
			top.tokens = append(top.tokens, token.Token{Kind: token.Char, Text: text, Pos: pos})
		case scanner.String, scanner.RawString:
			value, err := strconv.Unquote(text)
			if err != nil {
				return nil, &Error{Pos: pos, Msg: fmt.Sprintf("malformed string literal %s", text)}
			}
			top.tokens = append(top.tokens, token.Token{Kind: token.String, Text: value, Pos: pos})
		case '(', '[', '{':
			stack = append(stack, &frame{delim: delimOf(tok), open: pos})
		case ')', ']', '}':
			if len(stack) == 1 {
				return nil, &Error{Pos: pos, Msg: fmt.Sprintf("unexpected %s", text)}
			}
			if d := delimOf(tok); d != top.delim {
				return nil, &Error{
					Pos: pos,
					Msg: fmt.Sprintf("mismatched %s, expected %s", text, top.delim.Close()),
				}
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.tokens = append(parent.tokens, token.Token{
				Kind:     token.Group,
				Pos:      top.open,
				Delim:    top.delim,
				Children: top.tokens,
			})
		default:
			top.tokens = append(top.tokens, token.Token{Kind: token.Punct, Text: text, Pos: pos})
		}
	}

	if scanErr != nil {
		return nil, scanErr
	}

	if len(stack) > 1 {
		top := stack[len(stack)-1]
		return nil, &Error{Pos: top.open, Msg: fmt.Sprintf("unclosed %s", top.delim.Open())}
	}

	return stack[0].tokens, nil
}

// StripInvocation removes a surrounding `name!( ... )` or `name( ... )`
// wrapper, with an optional trailing semicolon, and returns the tokens inside
// the parentheses. Any other sequence is returned unchanged.
func StripInvocation(tokens []token.Token) []token.Token {
	rest := tokens
	if n := len(rest); n > 0 && rest[n-1].IsPunct(";") {
		rest = rest[:n-1]
	}

	if len(rest) < 2 || rest[0].Kind != token.Ident {
		return tokens
	}
	rest = rest[1:]
	if rest[0].IsPunct("!") {
		rest = rest[1:]
	}

	if len(rest) != 1 || !rest[0].IsGroup(token.Paren) {
		return tokens
	}

	return rest[0].Children
}

func delimOf(tok rune) token.Delim {
	switch tok {
	case '(', ')':
		return token.Paren
	case '[', ']':
		return token.Bracket
	case '{', '}':
		return token.Brace
	}
	return token.NoDelim
}

func position(p scanner.Position) token.Pos {
	return token.Pos{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}
