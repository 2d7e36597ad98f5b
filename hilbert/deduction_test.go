package hilbert

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDeduceContradiction(t *testing.T) {
	pr := contradiction(t)
	h := Implies(p, Implies(q, Falsum))

	out, err := Deduce(pr, h)
	require.NoError(t, err)

	got, err := out.Conclude()
	require.NoError(t, err)
	assert.Equal(t, "((p => (q => ⊥)) => ⊥)", got.String())
	assert.Equal(t, "{p, q}", FormatSet(out.Premises()))
	require.NoError(t, Verify(out))

	want := []string{
		"(premise)", "(premise)",
		// p: other premise
		"(A1)", "(MP 1, 3)",
		// q: other premise
		"(A1)", "(MP 2, 5)",
		// h itself
		"(A1)", "(A2)", "(MP 7, 8)", "(A1)", "(MP 10, 9)",
		// (q => ⊥) by MP from p
		"(A2)", "(MP 11, 12)", "(MP 4, 13)",
		// ⊥ by MP from q
		"(A2)", "(MP 14, 15)", "(MP 6, 16)",
	}
	justs := make([]string, 0, out.Len())
	for _, l := range out.Lines() {
		justs = append(justs, l.Justification.String())
	}
	if diff := cmp.Diff(want, justs); diff != "" {
		t.Errorf("justifications mismatch (-want +got):\n%s", diff)
	}
}

func TestDeduceLeavesInputUntouched(t *testing.T) {
	pr := contradiction(t)
	before := render(pr)

	_, err := Deduce(pr, p)
	require.NoError(t, err)

	if diff := cmp.Diff(before, render(pr)); diff != "" {
		t.Errorf("input proof changed (-before +after):\n%s", diff)
	}
}

func TestDeduceMissingPremise(t *testing.T) {
	pr := NewProof(nil)
	pr.Axiom1(p, q)
	pr.Axiom1(q, p)

	_, err := Deduce(pr, p)
	assert.ErrorIs(t, err, ErrMissingPremise)
}

func TestDeduceEveryPremise(t *testing.T) {
	axiomatic := func(t *testing.T) *Proof {
		// {p} ⊢ (q => p) through an axiom line.
		pr := NewProof([]Formula{p})
		pr.Axiom1(p, q)
		_, err := pr.ModusPonens(p, Implies(q, p))
		require.NoError(t, err)
		return pr
	}
	chain := func(t *testing.T) *Proof {
		// {p, (p => q), (q => r)} ⊢ r
		pr := NewProof([]Formula{p, Implies(p, q), Implies(q, r)})
		_, err := pr.ModusPonens(p, q)
		require.NoError(t, err)
		_, err = pr.ModusPonens(q, r)
		require.NoError(t, err)
		return pr
	}
	doubleNegation := func(t *testing.T) *Proof {
		// {¬¬p} ⊢ p via A3.
		pr := NewProof([]Formula{Not(Not(p))})
		pr.Axiom3(p)
		_, err := pr.ModusPonens(Not(Not(p)), p)
		require.NoError(t, err)
		return pr
	}

	tests := []struct {
		name  string
		build func(t *testing.T) *Proof
	}{
		{"contradiction", contradiction},
		{"axiomatic", axiomatic},
		{"chain", chain},
		{"double negation", doubleNegation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pr := tt.build(t)
			q0, err := pr.Conclude()
			require.NoError(t, err)

			for _, h := range pr.Premises() {
				out, err := Deduce(pr, h)
				require.NoError(t, err, "discharging %s", h)
				require.NoError(t, Verify(out), "discharging %s", h)

				got, err := out.Conclude()
				require.NoError(t, err)
				assert.True(t, Equal(Implies(h, q0), got), "got %s", got)
				assert.Len(t, out.Premises(), len(pr.Premises())-1)
				assert.False(t, out.HasPremise(h))
			}
		})
	}
}

func TestDeduceAll(t *testing.T) {
	pr := contradiction(t)
	h := Implies(p, Implies(q, Falsum))

	out, err := DeduceAll(pr, []Formula{h, q, p})
	require.NoError(t, err)
	require.NoError(t, Verify(out))
	assert.Empty(t, out.Premises())

	got, err := out.Conclude()
	require.NoError(t, err)
	assert.True(t, Equal(Implies(p, Implies(q, Implies(h, Falsum))), got), "got %s", got)

	same, err := DeduceAll(pr, nil)
	require.NoError(t, err)
	assert.Same(t, pr, same)

	_, err = DeduceAll(pr, []Formula{p, p})
	assert.ErrorIs(t, err, ErrMissingPremise)
}

func TestDeduceMalformedModusPonens(t *testing.T) {
	pr := Assemble([]Formula{p}, []Line{
		{Formula: p, Justification: Justification{Rule: RulePremise}},
		{Formula: q, Justification: ByModusPonens(1, 1)},
	})

	_, err := Deduce(pr, p)
	require.ErrorIs(t, err, ErrMalformedProof)

	var lerr *LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Line)
}

func TestDeduceMalformedAxiom(t *testing.T) {
	pr := Assemble([]Formula{p}, []Line{
		{Formula: p, Justification: Justification{Rule: RulePremise}},
		{Formula: Implies(p, q), Justification: Justification{Rule: RuleAxiom1}},
	})

	_, err := Deduce(pr, p)
	assert.ErrorIs(t, err, ErrMalformedProof)
}

func TestDeduceMalformedPremiseLine(t *testing.T) {
	pr := Assemble([]Formula{p}, []Line{
		{Formula: p, Justification: Justification{Rule: RulePremise}},
		{Formula: r, Justification: Justification{Rule: RulePremise}},
	})

	_, err := Deduce(pr, p)
	assert.ErrorIs(t, err, ErrMalformedProof)
}

func TestDeduceEmptyAssembledProof(t *testing.T) {
	pr := Assemble([]Formula{p}, nil)

	_, err := Deduce(pr, p)
	assert.ErrorIs(t, err, ErrEmptyProof)
}

func TestDeducePrefersRecordedCitation(t *testing.T) {
	// q follows from both p, (p => q) and r, (r => q); the proof used r.
	pq := Implies(p, q)
	pr := NewProof([]Formula{p, pq, r, Implies(r, q)})
	_, err := pr.ModusPonens(r, q)
	require.NoError(t, err)

	out, err := Deduce(pr, pq)
	require.NoError(t, err)
	require.NoError(t, Verify(out))
	require.Equal(t, 17, out.Len())

	rows := render(out)
	want := []string{
		"(A2) (((p => q) => (r => q)) => (((p => q) => r) => ((p => q) => q)))",
		"(MP 14, 15) (((p => q) => r) => ((p => q) => q))",
		"(MP 12, 16) ((p => q) => q)",
	}
	if diff := cmp.Diff(want, rows[14:]); diff != "" {
		t.Errorf("modus ponens case mismatch (-want +got):\n%s", diff)
	}
}

func TestDeduceRebuildsMissingCitation(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	pr := Assemble([]Formula{p, Implies(p, q)}, []Line{
		{Formula: p, Justification: Justification{Rule: RulePremise}},
		{Formula: Implies(p, q), Justification: Justification{Rule: RulePremise}},
		{Formula: q, Justification: Justification{Rule: RuleModusPonens}},
	}, WithLogger(zap.New(core)))
	require.ErrorIs(t, Verify(pr), ErrMalformedProof)

	out, err := Deduce(pr, p)
	require.NoError(t, err)
	require.NoError(t, Verify(out))

	got, err := out.Conclude()
	require.NoError(t, err)
	assert.Equal(t, "(p => q)", got.String())
	assert.Equal(t, 1, logs.FilterMessage("modus ponens citation rebuilt by search").Len())
}

func TestDeduceLogsDischarge(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	pr := contradiction(t)

	_, err := Deduce(pr, p, WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, pr.Len(), logs.FilterMessage("deduce line").Len())
	discharged := logs.FilterMessage("premise discharged").All()
	require.Len(t, discharged, 1)
	assert.Equal(t, int64(pr.Len()), discharged[0].ContextMap()["lines_in"])
}
