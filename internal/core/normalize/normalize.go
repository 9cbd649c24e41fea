// Package normalize folds a raw command-line token into the canonical form the
// time classifier and the zone table are keyed by. Token applies, in order:
// Sanitize, NFKC, case folding, removal of combining marks and format
// characters, width folding, typographic sign folding and whitespace removal.
// The result is idempotent.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains holds transformers; cases.Fold keeps state, so they are not shared
var chains = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)), // ZWJ, ZWNJ, BOM
			width.Fold,
			runes.Map(foldSign),
			runes.Remove(runes.Predicate(unicode.IsSpace)),
		)
	},
}

// Token returns the canonical form of s
func Token(s string) string {
	if s = Sanitize(s); s == "" {
		return ""
	}
	tr := chains.Get().(transform.Transformer)
	defer chains.Put(tr)
	tr.Reset()

	out, _, err := transform.String(tr, s)
	if err != nil {
		return strings.ToLower(strings.Join(strings.Fields(s), ""))
	}
	return out
}

// foldSign maps the minus and plus lookalikes NFKC leaves alone
func foldSign(r rune) rune {
	switch r {
	case '\u2212', '\u2012', '\u2013', '\u2010', '\u2011', '\ufe63':
		return '-'
	case '\u2795':
		return '+'
	}
	return r
}
