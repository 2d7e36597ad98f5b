package main

import "github.com/rfielding/hilbert-deduction/hilbert"

// Example is a canned proof and the premise the demo discharges from it.
type Example struct {
	Name      string
	Proof     *hilbert.Proof
	Discharge hilbert.Formula
}

// CreateContradictionExample proves ⊥ from p, q and p => ¬q.
func CreateContradictionExample(opts ...hilbert.Option) (*Example, error) {
	atoms := hilbert.Atoms("p", "q")
	p, q := atoms[0], atoms[1]
	h := hilbert.Implies(p, hilbert.Not(q))

	pr := hilbert.NewProof([]hilbert.Formula{p, q, h}, opts...)
	if _, err := pr.ModusPonens(p, hilbert.Not(q)); err != nil {
		return nil, err
	}
	if _, err := pr.ModusPonens(q, hilbert.Falsum); err != nil {
		return nil, err
	}
	return &Example{Name: "contradiction", Proof: pr, Discharge: h}, nil
}

// CreateSyllogismExample chains p => q and q => r, then discharges p to
// get the hypothetical syllogism p => r.
func CreateSyllogismExample(opts ...hilbert.Option) (*Example, error) {
	atoms := hilbert.Atoms("p", "q", "r")
	p, q, r := atoms[0], atoms[1], atoms[2]

	pr := hilbert.NewProof([]hilbert.Formula{hilbert.Implies(p, q), hilbert.Implies(q, r), p}, opts...)
	if _, err := pr.ModusPonens(p, q); err != nil {
		return nil, err
	}
	if _, err := pr.ModusPonens(q, r); err != nil {
		return nil, err
	}
	return &Example{Name: "syllogism", Proof: pr, Discharge: p}, nil
}

// CreateDoubleNegationExample derives p from ¬¬p with axiom 3. Discharging
// ¬¬p leaves a premise-free proof of ¬¬p => p.
func CreateDoubleNegationExample(opts ...hilbert.Option) (*Example, error) {
	p := hilbert.Atoms("p")[0]
	nnp := hilbert.Not(hilbert.Not(p))

	pr := hilbert.NewProof([]hilbert.Formula{nnp}, opts...)
	pr.Axiom3(p)
	if _, err := pr.ModusPonens(nnp, p); err != nil {
		return nil, err
	}
	return &Example{Name: "double negation", Proof: pr, Discharge: nnp}, nil
}

// Examples returns every canned example, contradiction first.
func Examples(opts ...hilbert.Option) ([]*Example, error) {
	builders := []func(...hilbert.Option) (*Example, error){
		CreateContradictionExample,
		CreateSyllogismExample,
		CreateDoubleNegationExample,
	}
	out := make([]*Example, 0, len(builders))
	for _, build := range builders {
		ex, err := build(opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}
