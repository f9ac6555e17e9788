// Package diag turns translation failures into compiler-style diagnostics.
package diag

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/gccasm/lexer"
	"github.com/sarchlab/gccasm/token"
	"github.com/sarchlab/gccasm/translate"
)

// Kinds for failures that are not translation syntax errors.
const (
	KindLex      = "Lex"
	KindInternal = "Internal"
)

// Issue is one diagnostic.
type Issue struct {
	// Construct names the construct in a batch; empty for a single one.
	Construct string
	Kind      string
	Pos       token.Pos
	Message   string
}

// FromError classifies err.
func FromError(construct string, err error) Issue {
	issue := Issue{Construct: construct, Kind: KindInternal, Message: err.Error()}

	var syntaxErr *translate.SyntaxError
	var lexErr *lexer.Error
	switch {
	case errors.As(err, &syntaxErr):
		issue.Kind = syntaxErr.KindName()
		issue.Pos = syntaxErr.Pos
		issue.Message = syntaxErr.Kind.Error()
		if syntaxErr.Msg != "" {
			issue.Message += ": " + syntaxErr.Msg
		}
	case errors.As(err, &lexErr):
		issue.Kind = KindLex
		issue.Pos = lexErr.Pos
		issue.Message = lexErr.Msg
	}

	return issue
}

func (i Issue) String() string {
	var b strings.Builder
	b.WriteString(i.Pos.String())
	b.WriteString(": error: ")
	if i.Construct != "" && i.Construct != i.Pos.Filename {
		fmt.Fprintf(&b, "%s: ", i.Construct)
	}
	b.WriteString(i.Message)
	return b.String()
}

// Render writes the issue followed, when src holds the issue's line, by the
// line itself and a caret under the offending column.
func Render(w io.Writer, src string, issue Issue) {
	fmt.Fprintln(w, issue.String())

	if !issue.Pos.IsValid() {
		return
	}
	lines := strings.Split(src, "\n")
	if issue.Pos.Line > len(lines) {
		return
	}
	line := strings.TrimRight(lines[issue.Pos.Line-1], "\r")

	var caret strings.Builder
	for i, r := range []rune(line) {
		if i >= issue.Pos.Column-1 {
			break
		}
		if r == '\t' {
			caret.WriteByte('\t')
		} else {
			caret.WriteByte(' ')
		}
	}
	caret.WriteByte('^')

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, caret.String())
}
