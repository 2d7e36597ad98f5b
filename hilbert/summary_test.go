package hilbert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteSummary(&sb, contradiction(t)))

	want := ` 1. (premise)    p
 2. (premise)    q
 3. (premise)    (p => (q => ⊥))
 4. (MP 1, 3)    (q => ⊥)
 5. (MP 2, 4)    ⊥
Proved ⊥ from premises {p, q, (p => (q => ⊥))} in 5 lines
`
	assert.Equal(t, want, sb.String())
}

func TestWriteSummaryEmptyPremises(t *testing.T) {
	pr := NewProof(nil)
	pr.Axiom1(p, q)

	out := pr.String()
	assert.Contains(t, out, " 1. (A1)         (p => (q => p))\n")
	assert.Contains(t, out, "from premises {} in 1 lines")
}

func TestWriteSummaryEmptyProof(t *testing.T) {
	var sb strings.Builder
	assert.ErrorIs(t, WriteSummary(&sb, NewProof(nil)), ErrEmptyProof)
	assert.Contains(t, NewProof(nil).String(), "proof has no lines")
}
