// Package normalize maps raw freeform vendor strings to canonical
// brand and category labels via rule tables.
package normalize

import (
	"net/url"
	"strings"
)

type (
	// Rule binds one canonical label to the lowercase variant strings
	// it accepts.
	Rule struct {
		Canonical string
		Variants  []string
	}

	// RuleTable is scanned in order: when two rules claim the same
	// variant, the earlier rule wins. Keeping the table an ordered
	// slice makes that tie-break explicit and deterministic.
	RuleTable []Rule
)

// Normalize maps a raw vendor string to its canonical label. The input
// is percent-decoded with literal '+' treated as a space, then
// lower-cased and trimmed; a malformed escape sequence falls back to
// the same cleaning without decoding. If no rule matches, the ORIGINAL
// untouched input is returned so unmapped vendor values stay visible.
func Normalize(raw string, rules RuleTable) string {
	clean, err := url.QueryUnescape(raw)
	if err != nil {
		clean = strings.ReplaceAll(raw, "+", " ")
	}
	clean = strings.TrimSpace(strings.ToLower(clean))

	for _, rule := range rules {
		for _, v := range rule.Variants {
			if clean == strings.TrimSpace(strings.ToLower(v)) {
				return rule.Canonical
			}
		}
	}
	return raw
}
