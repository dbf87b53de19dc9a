// Package dimacs reads the DIMACS CNF text format and feeds it into a
// Builder, decoupling clause storage from the wire format the same way the
// original loader decoupled it from cdcl.Solver.
package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avharris/cdclsat/internal/cdcl"
)

// Builder is the subset of cdcl.Solver that Load needs to populate a
// formula. Keeping it as an interface lets tests drive the parser without a
// full solver.
type Builder interface {
	AddVariable() int
	AddClause(lits []cdcl.Literal) error
}

// Load reads a DIMACS CNF instance from r and replays it into b: one
// AddVariable call per declared variable, then one AddClause call per
// clause line. Comment lines ('c') are skipped wherever they appear; the
// problem line ('p cnf nVars nClauses') must appear before any clause line.
// Each clause must occupy exactly one line ending in 0: a clause split
// across lines, or several clauses on one line, is rejected as an error.
func Load(r io.Reader, b Builder) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nVars, nClauses, err := readHeader(scanner)
	if err != nil {
		return err
	}

	for i := 0; i < nVars; i++ {
		b.AddVariable()
	}

	seen := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		lits, err := parseClauseLine(line, nVars)
		if err != nil {
			return errors.Wrapf(err, "clause %d", seen+1)
		}
		if err := b.AddClause(lits); err != nil {
			return errors.Wrapf(err, "clause %d", seen+1)
		}
		seen++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading DIMACS input")
	}
	if seen != nClauses {
		return errors.Errorf("header declared %d clauses, found %d", nClauses, seen)
	}
	return nil
}

// readHeader scans past leading comment lines and parses the mandatory
// "p cnf nVars nClauses" problem line.
func readHeader(scanner *bufio.Scanner) (nVars, nClauses int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == 'c' {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 4 || parts[0] != "p" || parts[1] != "cnf" {
			return 0, 0, errors.Errorf("malformed problem line: %q", line)
		}
		nVars, err = strconv.Atoi(parts[2])
		if err != nil {
			return 0, 0, errors.Wrap(err, "parsing variable count")
		}
		nClauses, err = strconv.Atoi(parts[3])
		if err != nil {
			return 0, 0, errors.Wrap(err, "parsing clause count")
		}
		return nVars, nClauses, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, errors.Wrap(err, "reading DIMACS input")
	}
	return 0, 0, errors.New("missing problem line")
}

// parseClauseLine converts a whitespace-separated run of signed integers
// terminated by 0 into literals. A line that is just "0" yields an empty
// clause, the DIMACS encoding for an immediately unsatisfiable formula.
func parseClauseLine(line string, nVars int) ([]cdcl.Literal, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[len(fields)-1] != "0" {
		return nil, errors.Errorf("clause line missing terminating 0: %q", line)
	}

	lits := make([]cdcl.Literal, 0, len(fields)-1)
	for _, f := range fields[:len(fields)-1] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing literal %q", f)
		}
		if n == 0 {
			return nil, errors.New("unexpected 0 in the middle of a clause")
		}

		v := n
		if v < 0 {
			v = -v
		}
		if v > nVars {
			return nil, errors.Errorf("literal %d exceeds declared variable count %d", n, nVars)
		}

		lit := cdcl.PositiveLiteral(v - 1)
		if n < 0 {
			lit = lit.Negate()
		}
		lits = append(lits, lit)
	}
	return lits, nil
}
