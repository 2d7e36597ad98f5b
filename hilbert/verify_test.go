package hilbert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxiomMatchers(t *testing.T) {
	pr := NewProof(nil)
	a1 := pr.Axiom1(Implies(p, q), r)
	a2 := pr.Axiom2(p, Not(q), And(p, r))
	a3 := pr.Axiom3(Implies(q, r))

	assert.True(t, IsAxiom1(a1))
	assert.True(t, IsAxiom2(a2))
	assert.True(t, IsAxiom3(a3))

	assert.False(t, IsAxiom1(a2))
	assert.False(t, IsAxiom2(a1))
	assert.False(t, IsAxiom3(a1))

	assert.False(t, IsAxiom1(p))
	assert.False(t, IsAxiom1(Implies(p, Implies(q, r))))
	assert.False(t, IsAxiom2(Implies(Implies(p, Implies(q, r)), Implies(Implies(p, q), Implies(q, r)))))
	assert.False(t, IsAxiom3(Implies(Not(Not(p)), q)))
	assert.False(t, IsAxiomInstance(RuleModusPonens, a1))
}

func TestVerifyAcceptsBuiltProofs(t *testing.T) {
	require.NoError(t, Verify(contradiction(t)))
	require.NoError(t, Verify(NewProof(nil)))
}

func TestVerifyRejects(t *testing.T) {
	tests := []struct {
		name     string
		premises []Formula
		lines    []Line
		badLine  int
	}{
		{
			name:     "premise not in set",
			premises: []Formula{p},
			lines: []Line{
				{Formula: q, Justification: Justification{Rule: RulePremise}},
			},
			badLine: 1,
		},
		{
			name:     "axiom shape",
			premises: nil,
			lines: []Line{
				{Formula: Implies(p, p), Justification: Justification{Rule: RuleAxiom3}},
			},
			badLine: 1,
		},
		{
			name:     "forward citation",
			premises: []Formula{p, Implies(p, q)},
			lines: []Line{
				{Formula: p, Justification: Justification{Rule: RulePremise}},
				{Formula: q, Justification: ByModusPonens(1, 3)},
				{Formula: Implies(p, q), Justification: Justification{Rule: RulePremise}},
			},
			badLine: 2,
		},
		{
			name:     "wrong implication",
			premises: []Formula{p, Implies(p, q)},
			lines: []Line{
				{Formula: p, Justification: Justification{Rule: RulePremise}},
				{Formula: Implies(p, q), Justification: Justification{Rule: RulePremise}},
				{Formula: r, Justification: ByModusPonens(1, 2)},
			},
			badLine: 3,
		},
		{
			name:     "unknown rule",
			premises: nil,
			lines: []Line{
				{Formula: p, Justification: Justification{Rule: Rule(9)}},
			},
			badLine: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(Assemble(tt.premises, tt.lines))
			require.ErrorIs(t, err, ErrMalformedProof)

			var lerr *LineError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.badLine, lerr.Line)
		})
	}
}
