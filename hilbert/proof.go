package hilbert

import (
	"fmt"

	"go.uber.org/zap"
)

// Rule names the inference that justifies a proof line.
type Rule int

const (
	RulePremise Rule = iota
	RuleAxiom1
	RuleAxiom2
	RuleAxiom3
	RuleModusPonens
)

func (r Rule) String() string {
	switch r {
	case RulePremise:
		return "premise"
	case RuleAxiom1:
		return "A1"
	case RuleAxiom2:
		return "A2"
	case RuleAxiom3:
		return "A3"
	case RuleModusPonens:
		return "MP"
	default:
		return "?"
	}
}

// IsAxiom reports whether r is one of the three axiom schemas.
func (r Rule) IsAxiom() bool {
	return r == RuleAxiom1 || r == RuleAxiom2 || r == RuleAxiom3
}

// Justification explains one proof line. Antecedent and Implication are
// 1-based line numbers and are only set for RuleModusPonens.
type Justification struct {
	Rule        Rule
	Antecedent  int
	Implication int
}

// ByModusPonens cites lines i (antecedent) and j (implication).
func ByModusPonens(i, j int) Justification {
	return Justification{Rule: RuleModusPonens, Antecedent: i, Implication: j}
}

func (j Justification) String() string {
	if j.Rule == RuleModusPonens {
		return fmt.Sprintf("(MP %d, %d)", j.Antecedent, j.Implication)
	}
	return "(" + j.Rule.String() + ")"
}

// Line is a formula together with its justification.
type Line struct {
	Formula       Formula
	Justification Justification
}

// Option configures a Proof.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger routes step and deduction events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Proof is an append-only sequence of justified lines over a fixed premise set.
// Lines start out as the premises; every later line is added by one of the
// step methods, which refuse (without mutating) when their precondition fails.
type Proof struct {
	premises []Formula
	isPrem   map[string]bool

	lines []Line
	first map[string]int // key -> 0-based index of first occurrence

	logger *zap.Logger
}

// NewProof starts a proof from premises. Structurally equal premises are
// collapsed; the first occurrence fixes the order.
func NewProof(premises []Formula, opts ...Option) *Proof {
	o := buildOptions(opts)
	p := &Proof{
		isPrem: make(map[string]bool, len(premises)),
		first:  make(map[string]int, len(premises)),
		logger: o.logger,
	}
	for _, f := range premises {
		k := Key(f)
		if p.isPrem[k] {
			continue
		}
		p.isPrem[k] = true
		p.premises = append(p.premises, f)
		p.append(f, Justification{Rule: RulePremise})
	}
	return p
}

// Assemble builds a proof record from explicit lines without checking them.
// Use Verify to find out whether the result is a valid derivation.
func Assemble(premises []Formula, lines []Line, opts ...Option) *Proof {
	o := buildOptions(opts)
	p := &Proof{
		isPrem: make(map[string]bool, len(premises)),
		first:  make(map[string]int, len(lines)),
		logger: o.logger,
	}
	for _, f := range premises {
		k := Key(f)
		if !p.isPrem[k] {
			p.isPrem[k] = true
			p.premises = append(p.premises, f)
		}
	}
	for _, l := range lines {
		p.append(l.Formula, l.Justification)
	}
	return p
}

func (p *Proof) append(f Formula, j Justification) {
	k := Key(f)
	if _, ok := p.first[k]; !ok {
		p.first[k] = len(p.lines)
	}
	p.lines = append(p.lines, Line{Formula: f, Justification: j})
}

// Premises returns a copy of the premise set, in proof order.
func (p *Proof) Premises() []Formula {
	out := make([]Formula, len(p.premises))
	copy(out, p.premises)
	return out
}

// HasPremise reports whether f is one of the premises.
func (p *Proof) HasPremise(f Formula) bool {
	return p.isPrem[Key(f)]
}

// Lines returns a copy of the proof lines.
func (p *Proof) Lines() []Line {
	out := make([]Line, len(p.lines))
	copy(out, p.lines)
	return out
}

// Len is the number of lines.
func (p *Proof) Len() int {
	return len(p.lines)
}

// Line returns line n (1-based).
func (p *Proof) Line(n int) (Line, bool) {
	if n < 1 || n > len(p.lines) {
		return Line{}, false
	}
	return p.lines[n-1], true
}

// IndexOf returns the 1-based line number of the first occurrence of f.
func (p *Proof) IndexOf(f Formula) (int, bool) {
	i, ok := p.first[Key(f)]
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// Axiom1 appends (a => (b => a)).
func (p *Proof) Axiom1(a, b Formula) Formula {
	f := Implies(a, Implies(b, a))
	p.step(f, Justification{Rule: RuleAxiom1})
	return f
}

// Axiom2 appends ((a => (b => c)) => ((a => b) => (a => c))).
func (p *Proof) Axiom2(a, b, c Formula) Formula {
	f := Implies(
		Implies(a, Implies(b, c)),
		Implies(Implies(a, b), Implies(a, c)),
	)
	p.step(f, Justification{Rule: RuleAxiom2})
	return f
}

// Axiom3 appends (¬¬a => a).
func (p *Proof) Axiom3(a Formula) Formula {
	f := Implies(Not(Not(a)), a)
	p.step(f, Justification{Rule: RuleAxiom3})
	return f
}

// ModusPonens derives b from a and (a => b), both of which must already be
// lines. The justification cites the first occurrence of each.
func (p *Proof) ModusPonens(a, b Formula) (Formula, error) {
	i, ok := p.IndexOf(a)
	if !ok {
		return nil, fmt.Errorf("modus ponens on %s: %w", a, ErrUnprovenAntecedent)
	}
	imp := Implies(a, b)
	j, ok := p.IndexOf(imp)
	if !ok {
		return nil, fmt.Errorf("modus ponens on %s: %w", imp, ErrUnprovenImplication)
	}
	p.step(b, ByModusPonens(i, j))
	return b, nil
}

// Conclude returns the final line.
func (p *Proof) Conclude() (Formula, error) {
	if len(p.lines) == 0 {
		return nil, ErrEmptyProof
	}
	return p.lines[len(p.lines)-1].Formula, nil
}

func (p *Proof) step(f Formula, j Justification) {
	p.append(f, j)
	p.logger.Debug("step",
		zap.Int("line", len(p.lines)),
		zap.Stringer("rule", j),
		zap.Stringer("formula", f))
}

// restate re-asserts an axiom instance from another proof verbatim.
func (p *Proof) restate(f Formula, r Rule) error {
	if !r.IsAxiom() || !IsAxiomInstance(r, f) {
		return fmt.Errorf("%s is not an instance of %s: %w", f, r, ErrMalformedProof)
	}
	p.step(f, Justification{Rule: r})
	return nil
}
