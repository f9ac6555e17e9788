package translate

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultUIDPlaceholder is what `%=` becomes in the target dialect.
const DefaultUIDPlaceholder = "${:uid}"

// sentinel protects literal dollars during the chained replacement.
const sentinel = "\u0080"

// Rewriter selects how template placeholders are rewritten.
type Rewriter int

const (
	// RewriteScan rewrites the template in a single left-to-right pass.
	RewriteScan Rewriter = iota
	// RewriteReplace applies a fixed chain of global substring
	// replacements. It assumes no declared name is part of another name and
	// does not understand operand modifiers.
	RewriteReplace
)

func (r Rewriter) String() string {
	switch r {
	case RewriteScan:
		return "scan"
	case RewriteReplace:
		return "replace"
	}
	return fmt.Sprintf("Rewriter(%d)", int(r))
}

// ParseRewriter parses the names returned by Rewriter.String.
func ParseRewriter(s string) (Rewriter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "scan":
		return RewriteScan, nil
	case "replace":
		return RewriteReplace, nil
	}
	return 0, fmt.Errorf("unknown rewriter %q (want scan or replace)", s)
}

// rewriteScan recognizes, from left to right:
//
//	$          -> $$
//	%%         -> %
//	%=         -> uid placeholder
//	%N         -> $N
//	%[name]    -> $i
//	%cN, %c[n] -> ${i:c}  (operand modifier c)
//
// Any other % becomes $.
func rewriteScan(tmpl template, names NameTable, uid string) (string, error) {
	src := tmpl.text

	var b strings.Builder
	b.Grow(len(src) + 8)

	for i := 0; i < len(src); {
		switch src[i] {
		case '$':
			b.WriteString("$$")
			i++
			continue
		case '%':
		default:
			b.WriteByte(src[i])
			i++
			continue
		}

		if i+1 >= len(src) {
			b.WriteByte('$')
			i++
			continue
		}

		switch next := src[i+1]; {
		case next == '%':
			b.WriteByte('%')
			i += 2
		case next == '=':
			b.WriteString(uid)
			i += 2
		case next == '[' || isDigit(next):
			idx, n, err := operandRef(tmpl, names, i+1)
			if err != nil {
				return "", err
			}
			b.WriteString("$" + strconv.Itoa(idx))
			i += 1 + n
		case isLetter(next) && i+2 < len(src) && (src[i+2] == '[' || isDigit(src[i+2])):
			idx, n, err := operandRef(tmpl, names, i+2)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "${%d:%c}", idx, next)
			i += 2 + n
		default:
			b.WriteByte('$')
			i++
		}
	}

	return b.String(), nil
}

// operandRef reads `N` or `[name]` at src[at] and returns the operand index
// and the number of bytes consumed.
func operandRef(tmpl template, names NameTable, at int) (int, int, error) {
	src := tmpl.text

	if src[at] == '[' {
		end := strings.IndexByte(src[at:], ']')
		if end < 0 {
			return 0, 0, syntaxErrorf(ErrBadSymbolicReference, tmpl.posAt(at),
				"unterminated reference %q", src[at:])
		}
		name := src[at+1 : at+end]
		idx, ok := names.Index(name)
		if !ok {
			return 0, 0, syntaxErrorf(ErrBadSymbolicReference, tmpl.posAt(at),
				"%%[%s]", name)
		}
		return idx, end + 1, nil
	}

	end := at
	for end < len(src) && isDigit(src[end]) {
		end++
	}
	digits := src[at:end]
	idx, err := strconv.Atoi(digits)
	if err != nil || idx >= len(names) {
		return 0, 0, syntaxErrorf(ErrBadOperandNumber, tmpl.posAt(at),
			"%%%s with %d operands", digits, len(names))
	}

	return idx, end - at, nil
}

// rewriteReplace is the chained-replacement rewrite. Each step relies on the
// previous one: literal dollars are hidden behind the sentinel before percent
// signs are promoted, and only then can `$$` be read as an escaped percent.
func rewriteReplace(tmpl template, names NameTable, uid string) (string, error) {
	s := tmpl.text
	if at := strings.Index(s, sentinel); at >= 0 {
		return "", syntaxErrorf(ErrSentinelInTemplate, tmpl.posAt(at), "at byte %d", at)
	}

	s = strings.ReplaceAll(s, "$", sentinel)
	s = strings.ReplaceAll(s, "%", "$")
	s = strings.ReplaceAll(s, "$$", "%")

	for i, name := range names {
		if name == "" {
			continue
		}
		s = strings.ReplaceAll(s, "$["+name+"]", "$"+strconv.Itoa(i))
	}

	if at := strings.Index(s, "$["); at >= 0 {
		ref := s[at:]
		if end := strings.IndexByte(ref, ']'); end >= 0 {
			ref = ref[:end+1]
		}
		return "", syntaxErrorf(ErrBadSymbolicReference, tmpl.posAt(0),
			"%%%s", strings.TrimPrefix(ref, "$"))
	}

	s = strings.ReplaceAll(s, "$=", uid)
	s = strings.ReplaceAll(s, sentinel, "$$")

	return s, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
