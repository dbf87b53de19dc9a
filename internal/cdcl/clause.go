package cdcl

import "strings"

// Clause is a disjunction of literals over distinct variables. The store
// that holds clauses (Solver.clauses) assigns each a stable index: original
// clauses are added first, learnt clauses are appended by the conflict
// analyzer and never removed.
type Clause struct {
	Literals []Literal

	// Learnt is true for clauses derived by the conflict analyzer rather
	// than supplied in the original formula.
	Learnt bool
}

func (c Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
