package translate

import (
	"errors"
	"fmt"

	"github.com/sarchlab/gccasm/token"
)

// Error kinds. A failed translation returns a *SyntaxError wrapping one of
// these, so callers can test with errors.Is.
var (
	ErrMissingTemplate       = errors.New("template missing")
	ErrTrailingTokens        = errors.New("extra tokens after clobbers")
	ErrUnsupportedClobbers   = errors.New("clobbers not supported")
	ErrEmptyOperand          = errors.New("empty operand")
	ErrBadSymbolicName       = errors.New("bad symbolic name")
	ErrBadSymbolicReference  = errors.New("undeclared symbolic name")
	ErrNonLiteralTemplate    = errors.New("expected a string literal")
	ErrBadOperand            = errors.New("bad operand")
	ErrDuplicateSymbolicName = errors.New("duplicate symbolic name")
	ErrBadOperandNumber      = errors.New("operand number out of range")
	ErrSentinelInTemplate    = errors.New("template contains reserved character U+0080")
)

var kindNames = map[error]string{
	ErrMissingTemplate:       "MissingTemplate",
	ErrTrailingTokens:        "TrailingTokens",
	ErrUnsupportedClobbers:   "UnsupportedClobbers",
	ErrEmptyOperand:          "EmptyOperand",
	ErrBadSymbolicName:       "BadSymbolicName",
	ErrBadSymbolicReference:  "BadSymbolicReference",
	ErrNonLiteralTemplate:    "NonLiteralTemplate",
	ErrBadOperand:            "BadOperand",
	ErrDuplicateSymbolicName: "DuplicateSymbolicName",
	ErrBadOperandNumber:      "BadOperandNumber",
	ErrSentinelInTemplate:    "SentinelInTemplate",
}

// SyntaxError is a translation failure attributed to a source position.
type SyntaxError struct {
	Kind error
	Pos  token.Pos
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}

	s := e.Kind.Error()
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Pos.IsValid() || e.Pos.Filename != "" {
		s = e.Pos.String() + ": " + s
	}

	return s
}

func (e *SyntaxError) Unwrap() error { return e.Kind }

// KindName returns the short name of the error kind, e.g. "EmptyOperand".
func (e *SyntaxError) KindName() string {
	if name, ok := kindNames[e.Kind]; ok {
		return name
	}
	return "Unknown"
}

func syntaxErrorf(kind error, pos token.Pos, format string, args ...any) error {
	return &SyntaxError{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
