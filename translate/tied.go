package translate

import (
	"strconv"
	"strings"
)

// expandTied rewrites every read-write ("+") output into a write-only ("=")
// output and returns one input per such output, tied to it by a constraint
// holding the output's position. outputs is not modified.
func expandTied(outputs []Operand) ([]Operand, []Operand) {
	rewritten := make([]Operand, len(outputs))
	var tied []Operand

	for k, o := range outputs {
		if !strings.HasPrefix(o.Constraint, "+") {
			rewritten[k] = o
			continue
		}

		tied = append(tied, Operand{
			Constraint: strconv.Itoa(k),
			Expr:       o.Expr,
			Pos:        o.Pos,
			Synthetic:  true,
		})

		o.Constraint = "=" + strings.TrimPrefix(o.Constraint, "+")
		rewritten[k] = o
	}

	return rewritten, tied
}
