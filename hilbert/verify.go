package hilbert

import "fmt"

// IsAxiom1 reports whether f has the shape (a => (b => a)).
func IsAxiom1(f Formula) bool {
	outer, ok := AsImplication(f)
	if !ok {
		return false
	}
	inner, ok := AsImplication(outer.Right)
	return ok && Equal(outer.Left, inner.Right)
}

// IsAxiom2 reports whether f has the shape
// ((a => (b => c)) => ((a => b) => (a => c))).
func IsAxiom2(f Formula) bool {
	outer, ok := AsImplication(f)
	if !ok {
		return false
	}
	abc, ok := AsImplication(outer.Left)
	if !ok {
		return false
	}
	bc, ok := AsImplication(abc.Right)
	if !ok {
		return false
	}
	a, b, c := abc.Left, bc.Left, bc.Right
	return Equal(outer.Right, Implies(Implies(a, b), Implies(a, c)))
}

// IsAxiom3 reports whether f has the shape (¬¬a => a).
func IsAxiom3(f Formula) bool {
	outer, ok := AsImplication(f)
	if !ok {
		return false
	}
	return Equal(outer.Left, Not(Not(outer.Right)))
}

// IsAxiomInstance dispatches on the schema named by r.
func IsAxiomInstance(r Rule, f Formula) bool {
	switch r {
	case RuleAxiom1:
		return IsAxiom1(f)
	case RuleAxiom2:
		return IsAxiom2(f)
	case RuleAxiom3:
		return IsAxiom3(f)
	default:
		return false
	}
}

// Verify re-checks every line of p against its justification using only
// the premise set and strictly earlier lines. It returns a *LineError for
// the first line that does not hold.
func Verify(p *Proof) error {
	for idx, l := range p.lines {
		if err := p.checkLine(idx+1, l); err != nil {
			return &LineError{Line: idx + 1, Formula: l.Formula, Err: err}
		}
	}
	return nil
}

func (p *Proof) checkLine(n int, l Line) error {
	switch j := l.Justification; j.Rule {
	case RulePremise:
		if !p.HasPremise(l.Formula) {
			return fmt.Errorf("cited as premise: %w", ErrMalformedProof)
		}
	case RuleAxiom1, RuleAxiom2, RuleAxiom3:
		if !IsAxiomInstance(j.Rule, l.Formula) {
			return fmt.Errorf("not an instance of %s: %w", j.Rule, ErrMalformedProof)
		}
	case RuleModusPonens:
		if j.Antecedent < 1 || j.Antecedent >= n || j.Implication < 1 || j.Implication >= n {
			return fmt.Errorf("%s cites a line not before %d: %w", j, n, ErrMalformedProof)
		}
		want := Implies(p.lines[j.Antecedent-1].Formula, l.Formula)
		if !Equal(p.lines[j.Implication-1].Formula, want) {
			return fmt.Errorf("line %d is not %s: %w", j.Implication, want, ErrMalformedProof)
		}
	default:
		return fmt.Errorf("unknown rule %d: %w", int(j.Rule), ErrMalformedProof)
	}
	return nil
}
