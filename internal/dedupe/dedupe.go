package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent enemy generation requests. Using a centralized
// singleflight.Group ensures that only one generation job runs for a given
// biome key while other callers wait for the result.

import "golang.org/x/sync/singleflight"

// EnemyGroup deduplicates enemy generation requests keyed by the canonical
// biome key (see keys.BiomeKey).
var EnemyGroup singleflight.Group
