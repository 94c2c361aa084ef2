package genai

import (
	"context"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/dedupe"
	"github.com/matthewfreeze/rpg-engine/internal/game"
	"github.com/matthewfreeze/rpg-engine/internal/keys"
	"github.com/matthewfreeze/rpg-engine/internal/logging"
)

// EnemyClient produces a validated enemy descriptor for a biome or reports
// why it could not. *Client implements it; tests inject stubs.
type EnemyClient interface {
	GenerateEnemy(ctx context.Context, biome string) (game.EnemyDescriptor, error)
}

// Generator wraps an EnemyClient with the static fallback table. EnemyFor
// never fails: every client error is logged and absorbed by substituting
// the fallback descriptor for the biome, so generation problems never reach
// the engine or the player as errors.
type Generator struct {
	client   EnemyClient
	fallback func(biome string) game.EnemyDescriptor
}

// NewGenerator builds a generator over the client and the fallback lookup
// (typically config.LoadedConfig.FallbackFor).
func NewGenerator(client EnemyClient, fallback func(biome string) game.EnemyDescriptor) *Generator {
	return &Generator{client: client, fallback: fallback}
}

// EnemyFor returns the enemy descriptor for the biome, generated when
// possible and served from the fallback table otherwise. Concurrent calls
// for the same biome are deduplicated and share one generation request.
func (g *Generator) EnemyFor(ctx context.Context, biome string) game.EnemyDescriptor {
	key := keys.BiomeKey(biome)
	v, _, _ := dedupe.EnemyGroup.Do(key, func() (interface{}, error) {
		d, err := g.client.GenerateEnemy(ctx, biome)
		if err != nil {
			d = g.fallback(biome)
			logging.Warn("enemy generation failed, serving fallback", err, logging.Fields{
				constants.LogFieldBiome:  biome,
				constants.LogFieldName:   d.Name,
				constants.LogFieldSource: constants.SourceFallback,
			})
			return d, nil
		}
		logging.Info("enemy generated", logging.Fields{
			constants.LogFieldBiome:  biome,
			constants.LogFieldName:   d.Name,
			constants.LogFieldSource: constants.SourceGenerated,
		})
		return d, nil
	})
	return v.(game.EnemyDescriptor)
}
