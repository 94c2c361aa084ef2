package game

import "github.com/matthewfreeze/rpg-engine/internal/constants"

// Ability describes a castable spell: its mana cost, raw power and elemental
// affinity. Values are immutable and shared read-only across the encounter.
type Ability struct {
	Name     string  `json:"name"`
	ManaCost int     `json:"mana_cost"`
	Power    int     `json:"power"`
	Element  Element `json:"element"`
}

// IsHealing reports whether the ability restores the caster instead of
// damaging the target.
func (a Ability) IsHealing() bool {
	return a.Element == ElementHealing
}

// Effect computes the ability's numeric effect without applying it. For a
// damaging ability it returns the damage against target and whether the
// target's weakness was exploited; for a healing ability it returns the raw
// amount restored to the caster (capping happens on application) and false.
//
// Damage formula: power + 2 x caster magic, doubled on a weakness match.
func (a Ability) Effect(caster, target *Combatant) (int, bool) {
	if a.IsHealing() {
		return a.Power, false
	}
	base := a.Power + 2*caster.Magic
	if target != nil && a.Element.Matches(target.Weakness) {
		return base * constants.WeaknessMultiplier, true
	}
	return base, false
}

// Catalog is the fixed, ordered set of abilities available in an encounter.
// It is built once from config and injected into the engine; insertion order
// is preserved so seeded random picks stay reproducible.
type Catalog struct {
	list  []Ability
	index map[string]int
}

// NewCatalog builds a catalog preserving ability order. Name uniqueness is
// enforced upstream by config validation; a later duplicate would shadow an
// earlier entry in lookups.
func NewCatalog(abilities []Ability) Catalog {
	c := Catalog{
		list:  append([]Ability(nil), abilities...),
		index: make(map[string]int, len(abilities)),
	}
	for i, a := range c.list {
		c.index[a.Name] = i
	}
	return c
}

// Get returns the ability with the exact given name.
func (c Catalog) Get(name string) (Ability, bool) {
	i, ok := c.index[name]
	if !ok {
		return Ability{}, false
	}
	return c.list[i], true
}

// At returns the ability at position i in catalog order.
func (c Catalog) At(i int) Ability {
	return c.list[i]
}

// Len returns the number of abilities in the catalog.
func (c Catalog) Len() int {
	return len(c.list)
}

// Names lists ability names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.list))
	for i, a := range c.list {
		names[i] = a.Name
	}
	return names
}

// Abilities returns a copy of the catalog entries in order.
func (c Catalog) Abilities() []Ability {
	return append([]Ability(nil), c.list...)
}

// MinCost returns the smallest mana cost across the catalog, or 0 when the
// catalog is empty. The default enemy policy treats it as the floor below
// which casting is pointless.
func (c Catalog) MinCost() int {
	if len(c.list) == 0 {
		return 0
	}
	min := c.list[0].ManaCost
	for _, a := range c.list[1:] {
		if a.ManaCost < min {
			min = a.ManaCost
		}
	}
	return min
}
