package keys

import "strings"

// BiomeKey produces a canonical key for a biome tag. Behavior: trims,
// lower-cases and joins the words with underscores, so "Magitek Factory",
// " magitek  factory " and "MAGITEK FACTORY" address the same fallback and
// dedupe entries.
func BiomeKey(tag string) string {
	return strings.Join(strings.Fields(strings.ToLower(tag)), "_")
}
