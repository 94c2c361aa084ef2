package game

import (
	"fmt"
	"strings"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
)

// EnemyDescriptor is the shape the content generator produces (or the
// fallback table supplies) to instantiate the opposing combatant. All fields
// are required; numeric fields must sit inside the documented ranges.
type EnemyDescriptor struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Health      int     `json:"hp"`
	Mana        int     `json:"mp"`
	Strength    int     `json:"strength"`
	Magic       int     `json:"magic"`
	Speed       int     `json:"speed"`
	Weakness    Element `json:"weakness"`
}

// Validate checks required fields and documented stat ranges. A descriptor
// failing validation is discarded in favor of a fallback; validation errors
// never reach the engine.
func (d EnemyDescriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("descriptor missing name")
	}
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("descriptor missing description")
	}
	if d.Health < constants.EnemyHealthMin || d.Health > constants.EnemyHealthMax {
		return fmt.Errorf("hp %d outside range %d-%d", d.Health, constants.EnemyHealthMin, constants.EnemyHealthMax)
	}
	if d.Mana < constants.EnemyManaMin || d.Mana > constants.EnemyManaMax {
		return fmt.Errorf("mp %d outside range %d-%d", d.Mana, constants.EnemyManaMin, constants.EnemyManaMax)
	}
	if d.Strength < constants.EnemyStrengthMin || d.Strength > constants.EnemyStrengthMax {
		return fmt.Errorf("strength %d outside range %d-%d", d.Strength, constants.EnemyStrengthMin, constants.EnemyStrengthMax)
	}
	if d.Magic < constants.EnemyMagicMin || d.Magic > constants.EnemyMagicMax {
		return fmt.Errorf("magic %d outside range %d-%d", d.Magic, constants.EnemyMagicMin, constants.EnemyMagicMax)
	}
	if d.Speed < constants.EnemySpeedMin || d.Speed > constants.EnemySpeedMax {
		return fmt.Errorf("speed %d outside range %d-%d", d.Speed, constants.EnemySpeedMin, constants.EnemySpeedMax)
	}
	switch d.Weakness.Normalize() {
	case ElementFire, ElementIce, ElementThunder:
	default:
		return fmt.Errorf("weakness %q must be one of fire, ice, thunder", d.Weakness)
	}
	return nil
}

// Combatant builds the battle-ready enemy at full health and mana.
func (d EnemyDescriptor) Combatant() *Combatant {
	return NewCombatant(d.Name, d.Health, d.Mana, d.Strength, d.Magic, d.Speed, d.Weakness)
}
