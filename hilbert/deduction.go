package hilbert

import (
	"fmt"

	"go.uber.org/zap"
)

// Deduce applies the Deduction Theorem: from a proof of q over premises
// P ∪ {premise} it builds a proof of (premise => q) over P.
//
// Every original line t is replaced by a short derivation ending in
// (premise => t), so by the last line we hold (premise => q). The input
// proof is only read.
func Deduce(proof *Proof, premise Formula, opts ...Option) (*Proof, error) {
	if !proof.HasPremise(premise) {
		return nil, fmt.Errorf("deduce %s: %w", premise, ErrMissingPremise)
	}
	if proof.Len() == 0 {
		return nil, fmt.Errorf("deduce %s: %w", premise, ErrEmptyProof)
	}

	o := &options{logger: proof.logger}
	for _, opt := range opts {
		opt(o)
	}
	log := o.logger.With(zap.Stringer("premise", premise))

	rest := make([]Formula, 0, len(proof.premises))
	for _, f := range proof.premises {
		if !Equal(f, premise) {
			rest = append(rest, f)
		}
	}
	out := NewProof(rest, WithLogger(o.logger))

	for idx, l := range proof.lines {
		n := idx + 1
		t := l.Formula

		var err error
		switch {
		case Equal(t, premise):
			log.Debug("deduce line", zap.Int("line", n), zap.String("case", "premise itself"))
			err = out.identity(premise)

		case proof.HasPremise(t):
			log.Debug("deduce line", zap.Int("line", n), zap.String("case", "other premise"))
			err = out.weaken(t, premise)

		case l.Justification.Rule.IsAxiom():
			log.Debug("deduce line", zap.Int("line", n), zap.String("case", "axiom"))
			if err = out.restate(t, l.Justification.Rule); err == nil {
				err = out.weaken(t, premise)
			}

		case l.Justification.Rule == RuleModusPonens:
			log.Debug("deduce line", zap.Int("line", n), zap.String("case", "modus ponens"))
			var tj Formula
			if tj, err = proof.antecedentOf(n, log); err == nil {
				err = out.distribute(premise, tj, t)
			}

		default:
			err = fmt.Errorf("%s does not justify %s: %w", l.Justification, t, ErrMalformedProof)
		}
		if err != nil {
			return nil, &LineError{Line: n, Formula: t, Err: err}
		}
	}

	log.Info("premise discharged",
		zap.Int("lines_in", proof.Len()),
		zap.Int("lines_out", out.Len()))
	return out, nil
}

// DeduceAll discharges premises left to right, so DeduceAll(pr, a, b)
// proves (b => (a => q)).
func DeduceAll(proof *Proof, premises []Formula, opts ...Option) (*Proof, error) {
	cur := proof
	for _, prem := range premises {
		next, err := Deduce(cur, prem, opts...)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// identity derives (h => h) from the axioms alone.
func (p *Proof) identity(h Formula) error {
	hh := Implies(h, h)
	p.Axiom1(h, hh)
	p.Axiom2(h, hh, h)
	if _, err := p.ModusPonens(Implies(h, Implies(hh, h)), Implies(Implies(h, hh), hh)); err != nil {
		return err
	}
	p.Axiom1(h, h)
	_, err := p.ModusPonens(Implies(h, hh), hh)
	return err
}

// weaken derives (h => t) from a line t already in p.
func (p *Proof) weaken(t, h Formula) error {
	p.Axiom1(t, h)
	_, err := p.ModusPonens(t, Implies(h, t))
	return err
}

// distribute derives (h => t) from (h => tj) and (h => (tj => t)).
func (p *Proof) distribute(h, tj, t Formula) error {
	p.Axiom2(h, tj, t)
	if _, err := p.ModusPonens(Implies(h, Implies(tj, t)), Implies(Implies(h, tj), Implies(h, t))); err != nil {
		return err
	}
	_, err := p.ModusPonens(Implies(h, tj), Implies(h, t))
	return err
}

// antecedentOf returns tj for the modus ponens line n, such that tj and
// (tj => t) both occur before n. The recorded citation wins; when it is
// missing or does not fit, earlier lines are searched in order.
func (p *Proof) antecedentOf(n int, log *zap.Logger) (Formula, error) {
	l := p.lines[n-1]
	t := l.Formula
	j := l.Justification
	if j.Antecedent >= 1 && j.Antecedent < n && j.Implication >= 1 && j.Implication < n {
		tj := p.lines[j.Antecedent-1].Formula
		if Equal(p.lines[j.Implication-1].Formula, Implies(tj, t)) {
			return tj, nil
		}
	}

	for a := 0; a < n-1; a++ {
		tj := p.lines[a].Formula
		if k, ok := p.first[Key(Implies(tj, t))]; ok && k < n-1 {
			log.Warn("modus ponens citation rebuilt by search",
				zap.Int("line", n),
				zap.Stringer("cited", j),
				zap.Int("antecedent", a+1),
				zap.Int("implication", k+1))
			return tj, nil
		}
	}
	return nil, fmt.Errorf("no antecedent for %s before line %d: %w", t, n, ErrMalformedProof)
}
