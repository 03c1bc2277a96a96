package machine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint returns a stable hex digest of the compiled table.
//
// Two tables with the same states, alphabets, rules and distinguished states
// produce the same fingerprint regardless of declaration order. Runs are
// deterministic, so (fingerprint, input, max steps) fully identifies a
// verdict; caches key on it.
func (t *Table) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "kind:%s\ninitial:%s\nfinal:%s\n", t.kind, t.initial, t.final)
	b.WriteString("states:")
	for _, s := range t.States() {
		b.WriteString(string(s))
		b.WriteByte(',')
	}
	b.WriteString("\ntape:")
	for _, sym := range t.TapeAlphabet() {
		b.WriteString(string(sym))
		b.WriteByte(',')
	}
	b.WriteString("\ninput:")
	for _, sym := range t.Alphabet() {
		b.WriteString(string(sym))
		b.WriteByte(',')
	}
	b.WriteByte('\n')
	for _, r := range t.Rules() {
		fmt.Fprintf(&b, "%s,%s->%s,%s,%s\n", r.When.State, r.When.Symbol, r.Then.Next, r.Then.Write, r.Then.Move)
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
