package hilbert

import (
	"fmt"
	"sort"
	"strings"
)

// Metric is a named proof counter.
type Metric struct {
	Name        string
	Value       float64
	Unit        string
	Description string
}

func (m *Metric) Inc() {
	m.Value++
}

// MetricsCollector holds counters describing a proof.
type MetricsCollector struct {
	metrics map[string]*Metric
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metric),
	}
}

// Counter returns the counter called name, creating it on first use.
func (mc *MetricsCollector) Counter(name, desc, unit string) *Metric {
	if m, exists := mc.metrics[name]; exists {
		return m
	}
	m := &Metric{Name: name, Unit: unit, Description: desc}
	mc.metrics[name] = m
	return m
}

// Value returns the current value of name, or 0 if it was never created.
func (mc *MetricsCollector) Value(name string) float64 {
	if m, ok := mc.metrics[name]; ok {
		return m.Value
	}
	return 0
}

// CollectMetrics counts lines per rule, premises, and the longest chain of
// modus ponens dependencies (depth).
func CollectMetrics(p *Proof) *MetricsCollector {
	mc := NewMetricsCollector()
	total := mc.Counter("lines", "total proof lines", "lines")
	mc.Counter("premises", "size of the premise set", "formulas").Value = float64(len(p.premises))
	depth := mc.Counter("depth", "longest modus ponens chain", "steps")

	byRule := map[Rule]*Metric{
		RulePremise:     mc.Counter("rule_premise", "lines justified as premises", "lines"),
		RuleAxiom1:      mc.Counter("rule_a1", "instances of axiom schema 1", "lines"),
		RuleAxiom2:      mc.Counter("rule_a2", "instances of axiom schema 2", "lines"),
		RuleAxiom3:      mc.Counter("rule_a3", "instances of axiom schema 3", "lines"),
		RuleModusPonens: mc.Counter("rule_mp", "modus ponens applications", "lines"),
	}

	d := make([]int, len(p.lines))
	for i, l := range p.lines {
		total.Inc()
		j := l.Justification
		if m, ok := byRule[j.Rule]; ok {
			m.Inc()
		}
		if j.Rule == RuleModusPonens && j.Antecedent >= 1 && j.Antecedent <= i && j.Implication >= 1 && j.Implication <= i {
			d[i] = 1 + max(d[j.Antecedent-1], d[j.Implication-1])
		}
		if float64(d[i]) > depth.Value {
			depth.Value = float64(d[i])
		}
	}
	return mc
}

// GenerateMetricsTable generates a markdown table of metrics
func (mc *MetricsCollector) GenerateMetricsTable() string {
	var sb strings.Builder
	sb.WriteString("| Metric | Value | Unit | Description |\n")
	sb.WriteString("|--------|-------|------|-------------|\n")

	names := make([]string, 0, len(mc.metrics))
	for name := range mc.metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := mc.metrics[name]
		sb.WriteString(fmt.Sprintf("| %s | %.0f | %s | %s |\n",
			m.Name, m.Value, m.Unit, m.Description))
	}

	return sb.String()
}
