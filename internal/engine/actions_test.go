package engine

import (
	"errors"
	"testing"

	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// fixedSource returns the same bonus and roll on every draw.
type fixedSource struct {
	n int
	f float64
}

func (s fixedSource) Intn(int) int     { return s.n }
func (s fixedSource) Float64() float64 { return s.f }

func readyBattle(player, enemy *game.Combatant, rng RandomSource) *Battle {
	enc := game.NewEncounter(player, enemy)
	b := New(enc, testCatalog(), always{Action{Kind: game.ActionWait}}, always{Action{Kind: game.ActionWait}}, rng)
	player.Gauge = 100
	enemy.Gauge = 100
	return b
}

func TestResolveAttackAddsBoundedBonus(t *testing.T) {
	player := game.NewCombatant("Terra", 100, 50, 16, 18, 12, game.ElementNone)
	enemy := game.NewCombatant("Golem", 200, 20, 15, 12, 8, game.ElementNone)
	b := readyBattle(player, enemy, fixedSource{n: 5})

	outcome, err := b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionAttack})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Amount != 21 {
		t.Fatalf("expected 16 strength + 5 bonus = 21 damage, got %d", outcome.Amount)
	}
	if enemy.Health != 179 {
		t.Fatalf("expected enemy at 179 health, got %d", enemy.Health)
	}
	if outcome.Side != game.SidePlayer || outcome.Kind != game.ActionAttack {
		t.Fatalf("expected player attack outcome, got %+v", outcome)
	}
	if player.Gauge != 0 {
		t.Fatalf("expected gauge reset after acting, got %d", player.Gauge)
	}
	if len(b.enc.Log) != 1 {
		t.Fatalf("expected one log entry, got %d", len(b.enc.Log))
	}
}

func TestResolveCastAppliesWeaknessDouble(t *testing.T) {
	player := game.NewCombatant("Terra", 100, 50, 16, 18, 12, game.ElementNone)
	enemy := game.NewCombatant("Golem", 200, 20, 15, 12, 8, game.ElementIce)
	b := readyBattle(player, enemy, zeroSource{})

	outcome, err := b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionCast, Ability: "Blizzard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Amount != 112 || !outcome.Weakness {
		t.Fatalf("expected 112 weakness damage, got %+v", outcome)
	}
	if enemy.Health != 88 {
		t.Fatalf("expected enemy at 88 health, got %d", enemy.Health)
	}
	if player.Mana != 40 {
		t.Fatalf("expected 10 mana spent, got %d", player.Mana)
	}
	if outcome.Ability != "Blizzard" {
		t.Fatalf("expected ability recorded, got %q", outcome.Ability)
	}
}

func TestResolveCastHealingRestoresAndCosts(t *testing.T) {
	player := game.NewCombatant("Terra", 100, 50, 16, 18, 12, game.ElementNone)
	enemy := game.NewCombatant("Golem", 80, 20, 15, 12, 8, game.ElementNone)
	player.Health = 60
	b := readyBattle(player, enemy, zeroSource{})

	outcome, err := b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionCast, Ability: "Cure"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Amount != 30 || outcome.Weakness {
		t.Fatalf("expected 30 restored with no weakness flag, got %+v", outcome)
	}
	if player.Health != 90 {
		t.Fatalf("expected player at 90 health, got %d", player.Health)
	}
	if player.Mana != 42 {
		t.Fatalf("expected 8 mana spent, got %d", player.Mana)
	}
	if enemy.Health != 80 {
		t.Fatalf("expected enemy untouched by healing, got %d", enemy.Health)
	}

	// A second cast near full health caps at MaxHealth.
	player.Gauge = 100
	outcome, err = b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionCast, Ability: "Cure"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Amount != 10 || player.Health != 100 {
		t.Fatalf("expected capped heal of 10, got %+v (health %d)", outcome, player.Health)
	}
}

func TestResolveFailuresLeaveStateUntouched(t *testing.T) {
	player := game.NewCombatant("Terra", 100, 5, 16, 18, 12, game.ElementNone)
	enemy := game.NewCombatant("Golem", 80, 20, 15, 12, 8, game.ElementNone)
	b := readyBattle(player, enemy, zeroSource{})

	if _, err := b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionCast, Ability: "Meteor"}); !errors.Is(err, ErrUnknownAbility) {
		t.Fatalf("expected ErrUnknownAbility, got %v", err)
	}
	if _, err := b.resolveTurn(game.SidePlayer, Action{Kind: game.ActionCast, Ability: "Fire"}); !errors.Is(err, ErrInsufficientMana) {
		t.Fatalf("expected ErrInsufficientMana, got %v", err)
	}
	if _, err := b.resolveTurn(game.SidePlayer, Action{Kind: "dance"}); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}

	if player.Mana != 5 || player.Health != 100 || enemy.Health != 80 {
		t.Fatalf("expected failures to mutate nothing, got mana=%d player=%d enemy=%d",
			player.Mana, player.Health, enemy.Health)
	}
	if player.Gauge != 100 {
		t.Fatalf("expected gauge still full for a re-choice, got %d", player.Gauge)
	}
	if len(b.enc.Log) != 0 || b.turns != 0 {
		t.Fatalf("expected no logged turns, got %d entries / %d turns", len(b.enc.Log), b.turns)
	}
}

func TestResolveWaitOnlyResetsGauge(t *testing.T) {
	player := game.NewCombatant("Terra", 100, 50, 16, 18, 12, game.ElementNone)
	enemy := game.NewCombatant("Golem", 80, 20, 15, 12, 8, game.ElementNone)
	b := readyBattle(player, enemy, zeroSource{})

	outcome, err := b.resolveTurn(game.SideEnemy, Action{Kind: game.ActionWait})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Kind != game.ActionWait || outcome.Side != game.SideEnemy {
		t.Fatalf("expected enemy wait outcome, got %+v", outcome)
	}
	if enemy.Gauge != 0 {
		t.Fatalf("expected gauge reset, got %d", enemy.Gauge)
	}
	if player.Health != 100 || enemy.Health != 80 || enemy.Mana != 20 {
		t.Fatalf("expected wait to change nothing else")
	}
	if outcome.Message != "Golem waits." {
		t.Fatalf("unexpected message %q", outcome.Message)
	}
}
