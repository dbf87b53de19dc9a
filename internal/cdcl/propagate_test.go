package cdcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropagate_UnitClauseAssigns(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause([]Literal{PositiveLiteral(0)})

	ok := s.propagate(0)

	assert.True(t, ok)
	assert.Equal(t, True, s.value[0])
	assert.Equal(t, 0, s.antecedent[0])
}

func TestPropagate_ChainOfImplications(t *testing.T) {
	// (x0) & (!x0 v x1) & (!x1 v x2) forces x0, x1, x2 all true.
	s := newTestSolver(3)
	s.AddClause([]Literal{PositiveLiteral(0)})
	s.AddClause([]Literal{NegativeLiteral(0), PositiveLiteral(1)})
	s.AddClause([]Literal{NegativeLiteral(1), PositiveLiteral(2)})

	ok := s.propagate(0)

	assert.True(t, ok)
	assert.Equal(t, True, s.value[0])
	assert.Equal(t, True, s.value[1])
	assert.Equal(t, True, s.value[2])
}

func TestPropagate_Conflict(t *testing.T) {
	s := newTestSolver(1)
	s.AddClause([]Literal{PositiveLiteral(0)})
	s.AddClause([]Literal{NegativeLiteral(0)})

	ok := s.propagate(0)

	assert.False(t, ok)
	assert.Equal(t, 1, s.kappaAntecedent)
}

func TestPropagate_NoUnitClauses_IsNoOp(t *testing.T) {
	s := newTestSolver(2)
	s.AddClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)})

	ok := s.propagate(0)

	assert.True(t, ok)
	assert.Equal(t, none, s.kappaAntecedent)
	assert.Equal(t, Unassigned, s.value[0])
	assert.Equal(t, Unassigned, s.value[1])
}

func TestPropagate_SatisfiedClauseIsSkipped(t *testing.T) {
	s := newTestSolver(2)
	s.assign(PositiveLiteral(0), 0, none)
	s.AddClause([]Literal{PositiveLiteral(0), NegativeLiteral(1)})

	// The only other clause is unit on x1 via a second clause.
	s.AddClause([]Literal{PositiveLiteral(1)})

	ok := s.propagate(0)

	assert.True(t, ok)
	assert.Equal(t, True, s.value[1])
}
