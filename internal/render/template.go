package render

import "strings"

// Slot markers recognized in templates. A template carries at most one slot;
// the builder replaces it wholesale with a generated HTML fragment.
const (
	SlotListingsTableRows = "<!-- LISTINGS_TABLE_ROWS -->"
	SlotPriceBandsContent = "<!-- PRICE_BANDS_CONTENT -->"
)

// TokenMap maps placeholder names to their replacement strings.
type TokenMap map[string]string

// ApplyTokens replaces every occurrence of {{name}} for each entry in tokens.
// Placeholders not present in the map pass through untouched, so a template
// may carry tokens another builder owns without breaking.
func ApplyTokens(template string, tokens TokenMap) string {
	out := template
	for name, value := range tokens {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

// ApplySlot replaces the first occurrence of marker with fragment. A missing
// marker is not an error: the fragment is silently discarded and the input
// returned unchanged.
func ApplySlot(html, marker, fragment string) string {
	return strings.Replace(html, marker, fragment, 1)
}
