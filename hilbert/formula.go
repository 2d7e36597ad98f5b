package hilbert

// Propositional formulas over two primitives: atoms and implication.
// Everything else (¬, ∧, ∨, ⊤) is sugar that expands into those two,
// so formulas built through the sugar compare equal to the same tree
// written out by hand.

// Formula is an immutable propositional formula.
// Two formulas are the same formula iff their String() forms match.
type Formula interface {
	String() string
	isFormula()
}

// Atom is an atomic proposition.
type Atom struct {
	Name string
}

func (a Atom) String() string {
	return a.Name
}

func (Atom) isFormula() {}

// Implication represents (Left => Right).
// Build it with Implies so the canonical text is computed once.
type Implication struct {
	Left, Right Formula
	text        string
}

// Implies builds (l => r).
func Implies(l, r Formula) Implication {
	return Implication{
		Left:  l,
		Right: r,
		text:  "(" + l.String() + " => " + r.String() + ")",
	}
}

func (i Implication) String() string {
	if i.text == "" {
		return "(" + i.Left.String() + " => " + i.Right.String() + ")"
	}
	return i.text
}

func (Implication) isFormula() {}

// Falsum is the reserved atom for falsehood.
var Falsum Formula = Atom{Name: "⊥"}

// Top is ¬⊥.
var Top Formula = Not(Falsum)

// Not: ¬p := (p => ⊥)
func Not(p Formula) Formula {
	return Implies(p, Falsum)
}

// And: (p ∧ q) := ¬(p => ¬q)
func And(p, q Formula) Formula {
	return Not(Implies(p, Not(q)))
}

// Or: (p ∨ q) := (¬p => q)
func Or(p, q Formula) Formula {
	return Implies(Not(p), q)
}

// Atoms returns one atom per name, in order.
func Atoms(names ...string) []Formula {
	out := make([]Formula, len(names))
	for i, n := range names {
		out[i] = Atom{Name: n}
	}
	return out
}

// Key is the structural-equality key of f.
func Key(f Formula) string {
	return f.String()
}

// Equal reports whether a and b are the same formula.
func Equal(a, b Formula) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// AsImplication returns f as an implication, if it is one.
func AsImplication(f Formula) (Implication, bool) {
	switch v := f.(type) {
	case Implication:
		return v, true
	case *Implication:
		if v == nil {
			return Implication{}, false
		}
		return *v, true
	default:
		return Implication{}, false
	}
}
