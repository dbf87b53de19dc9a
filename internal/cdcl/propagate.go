package cdcl

// propagate performs unit propagation to fixpoint at the given decision
// level by repeatedly sweeping every clause in index order. It returns true
// (OK) once a full pass finds no unit clause and no conflict, or false
// (CONFLICT) the moment a falsified clause is found, leaving its index in
// s.kappaAntecedent for the conflict analyzer.
//
// This is an "educational" full-rescan propagator used in place of watched
// literals: every unit assignment restarts the sweep from clause 0, which
// is simple and correct at the cost of speed.
func (s *Solver) propagate(level int) bool {
	for {
		unitFound := false

		for ci := range s.clauses {
			falseCount := 0
			unsetCount := 0
			satisfied := false
			var lastUnset Literal

			for _, lit := range s.clauses[ci].Literals {
				switch s.litValue(lit) {
				case True:
					satisfied = true
				case False:
					falseCount++
				default:
					unsetCount++
					lastUnset = lit
				}
				if satisfied {
					break
				}
			}

			if satisfied {
				continue
			}

			switch {
			case unsetCount == 1:
				s.assign(lastUnset, level, ci)
				unitFound = true
			case falseCount == len(s.clauses[ci].Literals):
				s.kappaAntecedent = ci
				return false
			}

			if unitFound {
				break
			}
		}

		if !unitFound {
			s.kappaAntecedent = none
			return true
		}
	}
}
