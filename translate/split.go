package translate

import "github.com/sarchlab/gccasm/token"

const (
	sectionTemplate = iota
	sectionOutputs
	sectionInputs
	sectionClobbers
	numSections
)

var sectionNames = [numSections]string{"template", "outputs", "inputs", "clobbers"}

// sections is a construct divided on its top-level colons. start[i] is the
// position where section i begins, used when the section itself is empty.
type sections struct {
	parts [numSections][]token.Token
	start [numSections]token.Pos
}

func split(tokens []token.Token) (sections, error) {
	var s sections

	parts, seps := token.Split(tokens, ":")
	if len(parts) == 0 || len(parts[sectionTemplate]) == 0 {
		pos := token.Pos{}
		if len(seps) > 0 {
			pos = seps[0].Pos
		}
		return s, syntaxErrorf(ErrMissingTemplate, pos, "construct must start with a template string")
	}

	s.start[sectionTemplate] = parts[sectionTemplate][0].Pos
	for i := 1; i < numSections; i++ {
		if i-1 < len(seps) {
			s.start[i] = seps[i-1].Pos
		}
	}

	for i := 0; i < numSections && i < len(parts); i++ {
		s.parts[i] = parts[i]
	}

	if clobbers := s.parts[sectionClobbers]; len(clobbers) > 0 {
		return s, syntaxErrorf(ErrUnsupportedClobbers, clobbers[0].Pos,
			"found %s", token.Format(clobbers))
	}

	if len(parts) > numSections {
		return s, syntaxErrorf(ErrTrailingTokens, seps[numSections-1].Pos,
			"a construct has at most %d sections", numSections)
	}

	return s, nil
}
