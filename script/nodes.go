package script

import (
	"fmt"
	"strings"

	"github.com/rfielding/hilbert-deduction/hilbert"
	"gopkg.in/yaml.v3"
)

type formulaNode struct {
	hilbert.Formula
}

func (f *formulaNode) UnmarshalYAML(n *yaml.Node) error {
	v, err := decodeFormula(n)
	if err != nil {
		return err
	}
	f.Formula = v
	return nil
}

func syntaxError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %s: %w", n.Line, fmt.Sprintf(format, args...), ErrSyntax)
}

// oneKey unpacks a mapping with exactly one key.
func oneKey(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, syntaxError(n, "expected a mapping with exactly one key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

// maxFormulaNodes bounds the nodes visited while decoding one formula,
// aliases included.
const maxFormulaNodes = 10000

// formulaDecoder walks formula nodes, following aliases itself. It tracks
// the nodes on the current path so a self-referential anchor is an error
// and not unbounded recursion.
type formulaDecoder struct {
	active map[*yaml.Node]bool
	nodes  int
}

func newFormulaDecoder() *formulaDecoder {
	return &formulaDecoder{active: make(map[*yaml.Node]bool)}
}

func decodeFormula(n *yaml.Node) (hilbert.Formula, error) {
	return newFormulaDecoder().formula(n)
}

func decodeArgs(n *yaml.Node, want int) ([]hilbert.Formula, error) {
	return newFormulaDecoder().args(n, want)
}

// resolve follows an alias to its anchor, refusing anchors that are
// still being decoded.
func (d *formulaDecoder) resolve(n *yaml.Node) (*yaml.Node, error) {
	d.nodes++
	if d.nodes > maxFormulaNodes {
		return nil, syntaxError(n, "formula has more than %d nodes", maxFormulaNodes)
	}
	if n.Kind != yaml.AliasNode {
		return n, nil
	}
	if n.Alias == nil || d.active[n.Alias] {
		return nil, syntaxError(n, "recursive alias *%s", n.Value)
	}
	return n.Alias, nil
}

func (d *formulaDecoder) formula(n *yaml.Node) (hilbert.Formula, error) {
	n, err := d.resolve(n)
	if err != nil {
		return nil, err
	}
	if n.Kind == yaml.AliasNode {
		return d.formula(n)
	}
	d.active[n] = true
	defer delete(d.active, n)

	switch n.Kind {
	case yaml.ScalarNode:
		return atom(n)
	case yaml.MappingNode:
		key, val, err := oneKey(n)
		if err != nil {
			return nil, err
		}
		if key == "not" {
			inner, err := d.args(val, 1)
			if err != nil {
				return nil, err
			}
			return hilbert.Not(inner[0]), nil
		}
		if key != "imp" && key != "and" && key != "or" {
			return nil, syntaxError(n, "unknown connective %q", key)
		}
		args, err := d.args(val, 2)
		if err != nil {
			return nil, err
		}
		switch key {
		case "imp":
			return hilbert.Implies(args[0], args[1]), nil
		case "and":
			return hilbert.And(args[0], args[1]), nil
		default:
			return hilbert.Or(args[0], args[1]), nil
		}
	default:
		return nil, syntaxError(n, "expected an atom or a connective")
	}
}

// atom decodes a scalar. Names that read like connective syntax are
// refused: they would print the same as a real implication without
// being one.
func atom(n *yaml.Node) (hilbert.Formula, error) {
	switch n.Value {
	case "":
		return nil, syntaxError(n, "empty atom")
	case "⊥", "bot":
		return hilbert.Falsum, nil
	case "⊤", "top":
		return hilbert.Top, nil
	}
	if strings.ContainsAny(n.Value, "()") || strings.Contains(n.Value, "=>") {
		return nil, syntaxError(n, "atom %q contains formula syntax; write connectives as {imp: [a, b]}", n.Value)
	}
	return hilbert.Atom{Name: n.Value}, nil
}

// args reads exactly want formulas from a sequence node; a single
// formula is accepted when want is 1.
func (d *formulaDecoder) args(n *yaml.Node, want int) ([]hilbert.Formula, error) {
	if n.Kind == yaml.AliasNode {
		target, err := d.resolve(n)
		if err != nil {
			return nil, err
		}
		n = target
	}
	if n.Kind != yaml.SequenceNode {
		if want != 1 {
			return nil, syntaxError(n, "expected a list of %d formulas", want)
		}
		f, err := d.formula(n)
		if err != nil {
			return nil, err
		}
		return []hilbert.Formula{f}, nil
	}
	if len(n.Content) != want {
		return nil, syntaxError(n, "expected %d formulas, got %d", want, len(n.Content))
	}
	d.active[n] = true
	defer delete(d.active, n)

	out := make([]hilbert.Formula, want)
	for i, c := range n.Content {
		f, err := d.formula(c)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

type stepNode Step

var stepArity = map[string]struct {
	rule  hilbert.Rule
	arity int
}{
	"axiom1": {hilbert.RuleAxiom1, 2},
	"axiom2": {hilbert.RuleAxiom2, 3},
	"axiom3": {hilbert.RuleAxiom3, 1},
	"mp":     {hilbert.RuleModusPonens, 2},
}

func (s *stepNode) UnmarshalYAML(n *yaml.Node) error {
	key, val, err := oneKey(n)
	if err != nil {
		return err
	}
	kind, ok := stepArity[key]
	if !ok {
		return syntaxError(n, "unknown step %q", key)
	}
	args, err := decodeArgs(val, kind.arity)
	if err != nil {
		return err
	}
	*s = stepNode{Rule: kind.rule, Args: args, Line: n.Line}
	return nil
}

type lineNode hilbert.Line

func (l *lineNode) UnmarshalYAML(n *yaml.Node) error {
	var raw struct {
		Formula *formulaNode `yaml:"formula"`
		Rule    string       `yaml:"rule"`
		From    []int        `yaml:"from"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	if raw.Formula == nil || raw.Formula.Formula == nil {
		return syntaxError(n, "line needs a formula")
	}
	rule, err := ParseRule(raw.Rule)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	j := hilbert.Justification{Rule: rule}
	if rule == hilbert.RuleModusPonens {
		if len(raw.From) != 2 {
			return syntaxError(n, "MP needs from: [antecedent, implication]")
		}
		j = hilbert.ByModusPonens(raw.From[0], raw.From[1])
	}
	*l = lineNode{Formula: raw.Formula.Formula, Justification: j}
	return nil
}
