package hilbert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMetrics(t *testing.T) {
	mc := CollectMetrics(contradiction(t))

	assert.Equal(t, 5.0, mc.Value("lines"))
	assert.Equal(t, 3.0, mc.Value("premises"))
	assert.Equal(t, 3.0, mc.Value("rule_premise"))
	assert.Equal(t, 2.0, mc.Value("rule_mp"))
	assert.Equal(t, 0.0, mc.Value("rule_a1"))
	assert.Equal(t, 2.0, mc.Value("depth"))
	assert.Equal(t, 0.0, mc.Value("no_such_metric"))
}

func TestCollectMetricsAfterDeduction(t *testing.T) {
	out, err := Deduce(contradiction(t), Implies(p, Implies(q, Falsum)))
	require.NoError(t, err)

	mc := CollectMetrics(out)
	assert.Equal(t, 17.0, mc.Value("lines"))
	assert.Equal(t, 4.0, mc.Value("rule_a1"))
	assert.Equal(t, 3.0, mc.Value("rule_a2"))
	assert.Equal(t, 8.0, mc.Value("rule_mp"))
}

func TestGenerateMetricsTable(t *testing.T) {
	table := CollectMetrics(contradiction(t)).GenerateMetricsTable()

	lines := strings.Split(strings.TrimSpace(table), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "| Metric | Value | Unit | Description |", lines[0])
	assert.Contains(t, table, "| lines | 5 | lines | total proof lines |")
	// Rows are sorted by name.
	assert.True(t, strings.Index(table, "| depth |") < strings.Index(table, "| lines |"))
}
