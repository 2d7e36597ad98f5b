package hilbert

import (
	"fmt"
	"io"
	"strings"
)

// WriteSummary prints one row per line followed by the conclusion:
//
//	 1. (premise)    p
//	 4. (MP 1, 3)    (q => ⊥)
//	Proved ⊥ from premises {p, q, (p => (q => ⊥))} in 5 lines
func WriteSummary(w io.Writer, p *Proof) error {
	for i, l := range p.lines {
		if _, err := fmt.Fprintf(w, "%2d. %-12s %s\n", i+1, l.Justification, l.Formula); err != nil {
			return err
		}
	}
	conclusion, err := p.Conclude()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Proved %s from premises %s in %d lines\n",
		conclusion, FormatSet(p.premises), len(p.lines))
	return err
}

// FormatSet renders formulas as {a, b, c}; the empty set is {}.
func FormatSet(fs []Formula) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// String returns the summary as a string, or the error text if the proof is empty.
func (p *Proof) String() string {
	var sb strings.Builder
	if err := WriteSummary(&sb, p); err != nil {
		return fmt.Sprintf("Proof: %v", err)
	}
	return sb.String()
}
