// Package script reads proofs written as YAML and replays them through the
// hilbert API.
//
// Formulas are structured YAML, not text: a scalar is an atom (⊥/bot and
// ⊤/top are reserved), a one-key mapping is a connective:
//
//	premises: [p, q, {imp: [p, {imp: [q, ⊥]}]}]
//	steps:
//	  - mp: [p, {imp: [q, ⊥]}]
//	  - mp: [q, ⊥]
//	deduce:
//	  - {imp: [p, {imp: [q, ⊥]}]}
//
// Instead of steps, a script may list explicit lines
// ({formula, rule, from}) which are assembled unchecked and then verified.
package script

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rfielding/hilbert-deduction/hilbert"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMixedModes: a script gave both steps and lines.
	ErrMixedModes = errors.New("script has both steps and lines")
	// ErrSyntax: a node does not encode a formula, step or line.
	ErrSyntax = errors.New("invalid proof script")
)

// Step is one replayed call into the proof API.
type Step struct {
	Rule hilbert.Rule
	Args []hilbert.Formula
	Line int // YAML source line
}

// Script is a decoded proof script.
type Script struct {
	Name     string
	Premises []hilbert.Formula
	Steps    []Step
	Lines    []hilbert.Line
	Deduce   []hilbert.Formula
}

type document struct {
	Premises []formulaNode `yaml:"premises"`
	Steps    []stepNode    `yaml:"steps"`
	Lines    []lineNode    `yaml:"lines"`
	Deduce   []formulaNode `yaml:"deduce"`
}

// Parse decodes a script from YAML.
func Parse(data []byte) (*Script, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Steps) > 0 && len(doc.Lines) > 0 {
		return nil, ErrMixedModes
	}

	s := &Script{}
	for _, f := range doc.Premises {
		s.Premises = append(s.Premises, f.Formula)
	}
	for _, st := range doc.Steps {
		s.Steps = append(s.Steps, Step(st))
	}
	for _, l := range doc.Lines {
		s.Lines = append(s.Lines, hilbert.Line(l))
	}
	for _, f := range doc.Deduce {
		s.Deduce = append(s.Deduce, f.Formula)
	}
	return s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = path
	return s, nil
}

// Build turns the script into a proof. Steps are replayed through the
// proof's step methods; explicit lines are assembled and must pass
// hilbert.Verify.
func (s *Script) Build(opts ...hilbert.Option) (*hilbert.Proof, error) {
	if len(s.Lines) > 0 {
		if len(s.Steps) > 0 {
			return nil, ErrMixedModes
		}
		pr := hilbert.Assemble(s.Premises, s.Lines, opts...)
		if err := hilbert.Verify(pr); err != nil {
			return nil, err
		}
		return pr, nil
	}

	pr := hilbert.NewProof(s.Premises, opts...)
	for i, st := range s.Steps {
		if err := apply(pr, st); err != nil {
			return nil, fmt.Errorf("step %d (line %d): %w", i+1, st.Line, err)
		}
	}
	return pr, nil
}

func apply(pr *hilbert.Proof, st Step) error {
	switch st.Rule {
	case hilbert.RuleAxiom1:
		pr.Axiom1(st.Args[0], st.Args[1])
	case hilbert.RuleAxiom2:
		pr.Axiom2(st.Args[0], st.Args[1], st.Args[2])
	case hilbert.RuleAxiom3:
		pr.Axiom3(st.Args[0])
	case hilbert.RuleModusPonens:
		_, err := pr.ModusPonens(st.Args[0], st.Args[1])
		return err
	default:
		return fmt.Errorf("rule %s cannot be a step: %w", st.Rule, ErrSyntax)
	}
	return nil
}

// Result holds the built proof and, when the script asks for it, the proof
// with its deduce premises discharged.
type Result struct {
	Proof   *hilbert.Proof
	Deduced *hilbert.Proof
}

// Final is the deduced proof if there is one, else the built proof.
func (r *Result) Final() *hilbert.Proof {
	if r.Deduced != nil {
		return r.Deduced
	}
	return r.Proof
}

// Run builds the proof and discharges the script's deduce premises (or
// extra, when given) with the Deduction Theorem. The output is verified.
func (s *Script) Run(extra []hilbert.Formula, opts ...hilbert.Option) (*Result, error) {
	pr, err := s.Build(opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Proof: pr}

	discharge := s.Deduce
	if len(extra) > 0 {
		discharge = extra
	}
	if len(discharge) == 0 {
		return res, nil
	}
	out, err := hilbert.DeduceAll(pr, discharge, opts...)
	if err != nil {
		return nil, err
	}
	if err := hilbert.Verify(out); err != nil {
		return nil, fmt.Errorf("deduced proof does not verify: %w", err)
	}
	res.Deduced = out
	return res, nil
}

// ParseRule accepts premise, A1..A3, axiom1..axiom3 and MP/mp.
func ParseRule(s string) (hilbert.Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "premise":
		return hilbert.RulePremise, nil
	case "a1", "axiom1":
		return hilbert.RuleAxiom1, nil
	case "a2", "axiom2":
		return hilbert.RuleAxiom2, nil
	case "a3", "axiom3":
		return hilbert.RuleAxiom3, nil
	case "mp", "modus_ponens":
		return hilbert.RuleModusPonens, nil
	default:
		return 0, fmt.Errorf("unknown rule %q: %w", s, ErrSyntax)
	}
}

// ParseFormula decodes a single formula written in script syntax, such as
// "p" or "{imp: [p, q]}".
func ParseFormula(src string) (hilbert.Formula, error) {
	var f formulaNode
	if err := yaml.Unmarshal([]byte(src), &f); err != nil {
		return nil, err
	}
	if f.Formula == nil {
		return nil, fmt.Errorf("empty formula %q: %w", src, ErrSyntax)
	}
	return f.Formula, nil
}
