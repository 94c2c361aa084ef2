package game

import (
	"strings"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
)

// Element tags an ability's affinity or a combatant's weakness.
// Using a dedicated type instead of plain string keeps matching explicit
// and self-documenting.
type Element string

const (
	ElementNone    Element = ""
	ElementFire    Element = "fire"
	ElementIce     Element = "ice"
	ElementThunder Element = "thunder"
	// ElementHealing marks a restorative ability rather than a damaging one.
	ElementHealing Element = "healing"
)

// Matches reports whether this element exploits the given weakness. The
// comparison is case-insensitive; empty tags never match.
func (e Element) Matches(weakness Element) bool {
	if e == ElementNone || weakness == ElementNone {
		return false
	}
	return strings.EqualFold(string(e), string(weakness))
}

// Normalize lowercases the tag so config and generator input compare
// consistently with the built-in constants.
func (e Element) Normalize() Element {
	return Element(strings.ToLower(strings.TrimSpace(string(e))))
}

// ActionKind is a string alias for the action a side takes on its turn.
type ActionKind string

const (
	// ActionNone is the sentinel for a cancelled or missing selection.
	// It never consumes a turn.
	ActionNone   ActionKind = ""
	ActionAttack ActionKind = "attack"
	ActionCast   ActionKind = "cast"
	ActionWait   ActionKind = "wait"
)

// Side identifies which combatant is acting or being polled.
type Side string

const (
	SidePlayer Side = "player"
	SideEnemy  Side = "enemy"
)

// Phase classifies the scheduler state after a tick.
type Phase string

const (
	PhaseCharging    Phase = "charging"
	PhasePlayerReady Phase = "player_ready"
	PhaseEnemyReady  Phase = "enemy_ready"
	PhaseBothReady   Phase = "both_ready"
	PhaseEnded       Phase = "ended"
)

// Combatant holds one side's stats and mutable battle state. Base stats are
// fixed for the encounter; Health, Mana and Gauge change on every resolved
// action and every scheduler tick. State is created fresh per encounter and
// discarded when it ends.
type Combatant struct {
	Name      string  `json:"name"`
	MaxHealth int     `json:"max_health"`
	Health    int     `json:"health"`
	MaxMana   int     `json:"max_mana"`
	Mana      int     `json:"mana"`
	Strength  int     `json:"strength"`
	Magic     int     `json:"magic"`
	Speed     int     `json:"speed"`
	Weakness  Element `json:"weakness"`
	// Gauge is the ATB readiness meter in [0, GaugeMax]. The combatant may
	// act once it saturates; it is reset to zero after the turn resolves.
	Gauge int `json:"gauge"`
}

// NewCombatant builds a battle-ready combatant at full health and mana with
// an empty readiness gauge.
func NewCombatant(name string, health, mana, strength, magic, speed int, weakness Element) *Combatant {
	return &Combatant{
		Name:      name,
		MaxHealth: health,
		Health:    health,
		MaxMana:   mana,
		Mana:      mana,
		Strength:  strength,
		Magic:     magic,
		Speed:     speed,
		Weakness:  weakness.Normalize(),
	}
}

// ApplyDamage removes up to amount health and returns the amount actually
// removed. Damage is clamped to the remaining health before subtracting, so
// health never goes below zero.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	removed := amount
	if removed > c.Health {
		removed = c.Health
	}
	c.Health -= removed
	return removed
}

// Heal restores up to amount health, capped at MaxHealth, and returns the
// amount actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	restored := amount
	if c.Health+restored > c.MaxHealth {
		restored = c.MaxHealth - c.Health
	}
	c.Health += restored
	return restored
}

// SpendMana deducts cost when affordable and reports success. A failed
// spend changes nothing; this is the sole gate on casting.
func (c *Combatant) SpendMana(cost int) bool {
	if cost < 0 || c.Mana < cost {
		return false
	}
	c.Mana -= cost
	return true
}

// RestoreMana adds up to amount mana, capped at MaxMana, and returns the
// amount actually restored. Nothing in the base encounter calls it; it is
// kept for parity with Heal.
func (c *Combatant) RestoreMana(amount int) int {
	if amount <= 0 {
		return 0
	}
	restored := amount
	if c.Mana+restored > c.MaxMana {
		restored = c.MaxMana - c.Mana
	}
	c.Mana += restored
	return restored
}

// AdvanceReadiness fills the gauge by increment x Speed, saturating at
// GaugeMax, and reports whether the combatant is ready to act. Speed is the
// sole source of turn-order advantage.
func (c *Combatant) AdvanceReadiness(increment int) bool {
	c.Gauge += increment * c.Speed
	if c.Gauge > constants.GaugeMax {
		c.Gauge = constants.GaugeMax
	}
	return c.Ready()
}

// ResetReadiness empties the gauge. Called exactly once right after this
// combatant completes a turn.
func (c *Combatant) ResetReadiness() {
	c.Gauge = 0
}

// Ready reports whether the gauge is saturated.
func (c *Combatant) Ready() bool {
	return c.Gauge >= constants.GaugeMax
}

// Alive reports whether the combatant can still fight.
func (c *Combatant) Alive() bool {
	return c.Health > 0
}

// TurnOutcome records one resolved turn for display. Outcomes live only in
// the encounter's bounded rolling log and never feed back into scheduling
// decisions.
type TurnOutcome struct {
	Side     Side       `json:"side"`
	Actor    string     `json:"actor"`
	Kind     ActionKind `json:"kind"`
	Ability  string     `json:"ability,omitempty"`
	Amount   int        `json:"amount"`
	Weakness bool       `json:"weakness"`
	Message  string     `json:"message"`
}

// Result is the terminal outcome of an encounter.
type Result struct {
	PlayerWon bool   `json:"player_won"`
	Winner    string `json:"winner"`
	Turns     int    `json:"turns"`
}

// Encounter is the in-memory state of one battle: both combatants, the
// current scheduler phase and a bounded log of recent outcomes. It is
// mutated exclusively by the engine's resolution steps.
type Encounter struct {
	Player *Combatant    `json:"player"`
	Enemy  *Combatant    `json:"enemy"`
	Phase  Phase         `json:"phase"`
	Winner string        `json:"winner"`
	Log    []TurnOutcome `json:"log"`
}

// NewEncounter pairs the two combatants in the charging phase.
func NewEncounter(player, enemy *Combatant) *Encounter {
	return &Encounter{Player: player, Enemy: enemy, Phase: PhaseCharging}
}

// AppendLog records an outcome, keeping only the most recent
// BattleLogLimit entries.
func (e *Encounter) AppendLog(o TurnOutcome) {
	e.Log = append(e.Log, o)
	if len(e.Log) > constants.BattleLogLimit {
		e.Log = e.Log[len(e.Log)-constants.BattleLogLimit:]
	}
}

// Ended reports whether the battle reached a terminal state.
func (e *Encounter) Ended() bool {
	return e.Phase == PhaseEnded
}

// Snapshot returns a detached copy of the observable state for presentation
// and input prompting. Mutating a snapshot has no effect on the battle.
func (e *Encounter) Snapshot() Snapshot {
	return Snapshot{
		Player: *e.Player,
		Enemy:  *e.Enemy,
		Phase:  e.Phase,
		Winner: e.Winner,
		Ended:  e.Phase == PhaseEnded,
		Log:    append([]TurnOutcome(nil), e.Log...),
	}
}

// Snapshot is the read-only view handed to presentation and input
// providers after every tick and resolved turn. Acting names the side being
// polled when the snapshot accompanies an input request.
type Snapshot struct {
	Player Combatant     `json:"player"`
	Enemy  Combatant     `json:"enemy"`
	Phase  Phase         `json:"phase"`
	Winner string        `json:"winner"`
	Ended  bool          `json:"ended"`
	Acting Side          `json:"acting,omitempty"`
	Log    []TurnOutcome `json:"log"`
}

// Combatant returns the snapshot combatant fighting on the given side.
func (s Snapshot) Combatant(side Side) Combatant {
	if side == SideEnemy {
		return s.Enemy
	}
	return s.Player
}
