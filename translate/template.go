package translate

import (
	"sort"
	"strings"

	"github.com/sarchlab/gccasm/token"
)

// template is the concatenation of the template literals. It remembers
// where each literal started so errors found while rewriting can point at
// the literal that holds the offending text.
type template struct {
	text      string
	fragments []fragment
}

type fragment struct {
	offset int
	pos    token.Pos
}

func assembleTemplate(tokens []token.Token) (template, error) {
	var b strings.Builder
	t := template{fragments: make([]fragment, 0, len(tokens))}

	for _, tok := range tokens {
		if tok.Kind != token.String {
			return template{}, syntaxErrorf(ErrNonLiteralTemplate, tok.Pos,
				"found %s %s in template", tok.Kind, tok)
		}
		t.fragments = append(t.fragments, fragment{offset: b.Len(), pos: tok.Pos})
		b.WriteString(tok.Text)
	}

	t.text = b.String()
	return t, nil
}

// posAt returns the position of the literal containing byte offset.
func (t template) posAt(offset int) token.Pos {
	if len(t.fragments) == 0 {
		return token.Pos{}
	}

	i := sort.Search(len(t.fragments), func(i int) bool {
		return t.fragments[i].offset > offset
	})
	if i == 0 {
		i = 1
	}

	return t.fragments[i-1].pos
}
