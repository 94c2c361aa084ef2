package engine

import (
	"errors"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// Action resolution errors. All are recoverable by construction: the failed
// side keeps its full gauge and chooses again.
var (
	ErrInvalidAction    = errors.New("invalid action selection")
	ErrUnknownAbility   = errors.New("unknown ability")
	ErrInsufficientMana = errors.New("insufficient mana")
)

// RandomSource is the injectable randomness behind attack bonuses and the
// default enemy policy. *math/rand.Rand satisfies it; tests swap in
// deterministic sources.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// Action is one side's choice for its turn. Ability carries the catalog
// name when Kind is ActionCast; the zero Action is the cancelled-selection
// sentinel.
type Action struct {
	Kind    game.ActionKind `json:"kind"`
	Ability string          `json:"ability,omitempty"`
}

// InputProvider supplies the next action for one side each time that side
// is ready to act. Implementations may block indefinitely (interactive
// input); returning an error aborts the encounter.
type InputProvider interface {
	ChooseAction(snap game.Snapshot) (Action, error)
}

// Battle drives one encounter: it advances the ATB gauges, dispatches ready
// turns to the two input providers and applies action effects. All state
// mutation happens between one provider decision and the next on a single
// goroutine; nothing outside the battle mutates the combatants.
type Battle struct {
	enc       *game.Encounter
	catalog   game.Catalog
	rng       RandomSource
	providers map[game.Side]InputProvider
	increment int
	turns     int
	playerWon bool
	observer  func(game.Snapshot)
}

// New assembles a battle over the encounter with the given ability catalog,
// per-side input providers and random source.
func New(enc *game.Encounter, catalog game.Catalog, player, enemy InputProvider, rng RandomSource) *Battle {
	return &Battle{
		enc:     enc,
		catalog: catalog,
		rng:     rng,
		providers: map[game.Side]InputProvider{
			game.SidePlayer: player,
			game.SideEnemy:  enemy,
		},
		increment: constants.GaugeIncrement,
	}
}

// Tick advances both gauges by increment x speed and classifies the
// scheduler phase. It never resolves actions; the run loop (or an external
// driver) acts on the returned phase.
func (b *Battle) Tick() game.Phase {
	if b.enc.Ended() {
		return game.PhaseEnded
	}
	b.enc.Player.AdvanceReadiness(b.increment)
	b.enc.Enemy.AdvanceReadiness(b.increment)
	b.enc.Phase = b.classify()
	return b.enc.Phase
}

func (b *Battle) classify() game.Phase {
	playerReady := b.enc.Player.Ready()
	enemyReady := b.enc.Enemy.Ready()
	switch {
	case playerReady && enemyReady:
		return game.PhaseBothReady
	case playerReady:
		return game.PhasePlayerReady
	case enemyReady:
		return game.PhaseEnemyReady
	default:
		return game.PhaseCharging
	}
}

// checkEnd moves the battle to the terminal phase once a side is out of
// health and records the winner. The first combatant to reach zero loses.
func (b *Battle) checkEnd() bool {
	switch {
	case !b.enc.Enemy.Alive():
		b.enc.Phase = game.PhaseEnded
		b.enc.Winner = b.enc.Player.Name
		b.playerWon = true
	case !b.enc.Player.Alive():
		b.enc.Phase = game.PhaseEnded
		b.enc.Winner = b.enc.Enemy.Name
		b.playerWon = false
	default:
		return false
	}
	return true
}

// Snapshot exposes the encounter's observable state for presentation.
func (b *Battle) Snapshot() game.Snapshot {
	return b.enc.Snapshot()
}

// SetObserver registers a callback invoked with a fresh snapshot after
// every resolved turn. Observation only; mutating the snapshot has no
// effect on the battle.
func (b *Battle) SetObserver(fn func(game.Snapshot)) {
	b.observer = fn
}

func (b *Battle) notify() {
	if b.observer != nil {
		b.observer(b.enc.Snapshot())
	}
}

// Result reports the terminal outcome. Meaningful once the battle ended.
func (b *Battle) Result() game.Result {
	return game.Result{
		PlayerWon: b.playerWon,
		Winner:    b.enc.Winner,
		Turns:     b.turns,
	}
}

func (b *Battle) combatant(side game.Side) *game.Combatant {
	if side == game.SideEnemy {
		return b.enc.Enemy
	}
	return b.enc.Player
}

func (b *Battle) opponent(side game.Side) *game.Combatant {
	if side == game.SideEnemy {
		return b.enc.Player
	}
	return b.enc.Enemy
}
