package engine

import (
	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// RandomPolicy is the default input provider for the uncontrolled side:
// mostly physical attacks, with an occasional uniformly-random spell when
// mana allows. It is a pluggable strategy — any InputProvider can drive the
// enemy instead.
type RandomPolicy struct {
	catalog game.Catalog
	rng     RandomSource
}

// NewRandomPolicy builds the policy over the shared ability catalog.
func NewRandomPolicy(catalog game.Catalog, rng RandomSource) *RandomPolicy {
	return &RandomPolicy{catalog: catalog, rng: rng}
}

// ChooseAction draws one roll per decision. It attacks on a roll under
// EnemyAttackChance, and is forced to attack whenever mana sits below the
// cheapest catalog cost; otherwise it picks uniformly from the catalog in
// order, falling back to attack when the pick is unaffordable. It never
// returns the cancelled-selection sentinel and never errors.
func (p *RandomPolicy) ChooseAction(snap game.Snapshot) (Action, error) {
	roll := p.rng.Float64()
	self := snap.Combatant(snap.Acting)
	if roll < constants.EnemyAttackChance || p.catalog.Len() == 0 || self.Mana < p.catalog.MinCost() {
		return Action{Kind: game.ActionAttack}, nil
	}
	pick := p.catalog.At(p.rng.Intn(p.catalog.Len()))
	if pick.ManaCost > self.Mana {
		return Action{Kind: game.ActionAttack}, nil
	}
	return Action{Kind: game.ActionCast, Ability: pick.Name}, nil
}
