package hilbert

import (
	"fmt"
	"io"
	"strings"
)

// GenerateGraphviz generates a Graphviz DOT representation of the proof's
// dependency graph: one node per line, edges from the two cited lines into
// every modus ponens conclusion.
func (p *Proof) GenerateGraphviz() string {
	var sb strings.Builder

	sb.WriteString("digraph Proof {\n")
	sb.WriteString("  rankdir=TB;\n")
	sb.WriteString("  node [shape=ellipse];\n")
	sb.WriteString("\n")

	for i, l := range p.lines {
		label := fmt.Sprintf("%d. %s\\n%s", i+1, l.Justification, dotEscape(l.Formula.String()))
		switch {
		case l.Justification.Rule == RulePremise:
			sb.WriteString(fmt.Sprintf("  L%d [label=\"%s\", shape=box];\n", i+1, label))
		case l.Justification.Rule.IsAxiom():
			sb.WriteString(fmt.Sprintf("  L%d [label=\"%s\", style=filled, fillcolor=lightgrey];\n", i+1, label))
		default:
			sb.WriteString(fmt.Sprintf("  L%d [label=\"%s\"];\n", i+1, label))
		}
	}
	sb.WriteString("\n")

	for i, l := range p.lines {
		j := l.Justification
		if j.Rule != RuleModusPonens {
			continue
		}
		sb.WriteString(fmt.Sprintf("  L%d -> L%d;\n", j.Antecedent, i+1))
		sb.WriteString(fmt.Sprintf("  L%d -> L%d [style=dashed];\n", j.Implication, i+1))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// WriteMermaid writes a Mermaid flowchart of the same dependency graph to w.
func (p *Proof) WriteMermaid(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "flowchart TD"); err != nil {
		return err
	}
	for i, l := range p.lines {
		text := strings.ReplaceAll(l.Formula.String(), `"`, "#quot;")
		if _, err := fmt.Fprintf(w, "  L%d[\"%d. %s %s\"]\n", i+1, i+1, l.Justification, text); err != nil {
			return err
		}
	}
	for i, l := range p.lines {
		j := l.Justification
		if j.Rule != RuleModusPonens {
			continue
		}
		if _, err := fmt.Fprintf(w, "  L%d --> L%d\n  L%d -.-> L%d\n", j.Antecedent, i+1, j.Implication, i+1); err != nil {
			return err
		}
	}
	return nil
}
