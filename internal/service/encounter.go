package service

import (
	"context"
	"errors"

	"github.com/matthewfreeze/rpg-engine/internal/config"
	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
	"github.com/matthewfreeze/rpg-engine/internal/logging"
)

// Generator is the minimal enemy-generation interface required by
// StartEncounter. Using a small interface simplifies testing.
type Generator interface {
	EnemyFor(ctx context.Context, biome string) game.EnemyDescriptor
}

var ErrNoPlayerTemplate = errors.New("configuration has no player template")

// StartEncounter performs all setup for one battle: it mints the player
// from the configured template at full health and mana, obtains the enemy
// descriptor for the biome (generated or fallback, the generator absorbs
// that distinction) and pairs the two in a charging encounter. The
// descriptor is returned alongside the encounter so presentation can show
// the enemy's description, which the combatant does not carry.
func StartEncounter(ctx context.Context, gen Generator, cfg *config.LoadedConfig, biome string) (*game.Encounter, game.EnemyDescriptor, error) {
	// Config validation happens at load time, so a missing player here is
	// a wiring mistake rather than user input.
	if cfg == nil || cfg.Player.Name == "" {
		return nil, game.EnemyDescriptor{}, ErrNoPlayerTemplate
	}

	player := cfg.Player.Combatant()
	desc := gen.EnemyFor(ctx, biome)
	enemy := desc.Combatant()

	logging.Info("encounter ready", logging.Fields{
		constants.LogFieldBiome: biome,
		constants.LogFieldName:  desc.Name,
	})
	return game.NewEncounter(player, enemy), desc, nil
}
