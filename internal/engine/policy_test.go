package engine

import (
	"testing"

	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// stubSource replays queued rolls and picks.
type stubSource struct {
	floats []float64
	ints   []int
}

func (s *stubSource) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *stubSource) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func enemySnapshot(mana int) game.Snapshot {
	return game.Snapshot{
		Player: game.Combatant{Name: "Terra", MaxHealth: 100, Health: 100, MaxMana: 50, Mana: 50},
		Enemy:  game.Combatant{Name: "Beast", MaxHealth: 80, Health: 80, MaxMana: 40, Mana: mana},
		Acting: game.SideEnemy,
	}
}

func TestPolicyAttacksOnLowRoll(t *testing.T) {
	p := NewRandomPolicy(testCatalog(), &stubSource{floats: []float64{0.69}})
	act, err := p.ChooseAction(enemySnapshot(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionAttack {
		t.Fatalf("expected attack on roll below 0.7, got %+v", act)
	}
}

func TestPolicyForcedAttackWhenManaBelowCheapestCost(t *testing.T) {
	// Cheapest catalog entry costs 8; a high roll must still attack at 7 MP.
	p := NewRandomPolicy(testCatalog(), &stubSource{floats: []float64{0.99}})
	act, err := p.ChooseAction(enemySnapshot(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionAttack {
		t.Fatalf("expected forced attack on low mana, got %+v", act)
	}
}

func TestPolicyCastsUniformCatalogPick(t *testing.T) {
	p := NewRandomPolicy(testCatalog(), &stubSource{floats: []float64{0.75}, ints: []int{3}})
	act, err := p.ChooseAction(enemySnapshot(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionCast || act.Ability != "Cure" {
		t.Fatalf("expected cast of catalog entry 3 (Cure), got %+v", act)
	}
}

func TestPolicyUnaffordablePickFallsBackToAttack(t *testing.T) {
	// 9 MP clears the 8 MP floor but cannot afford the 10 MP pick.
	p := NewRandomPolicy(testCatalog(), &stubSource{floats: []float64{0.9}, ints: []int{0}})
	act, err := p.ChooseAction(enemySnapshot(9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionAttack {
		t.Fatalf("expected fallback attack on unaffordable pick, got %+v", act)
	}
}

func TestPolicyEmptyCatalogAlwaysAttacks(t *testing.T) {
	p := NewRandomPolicy(game.NewCatalog(nil), &stubSource{floats: []float64{0.99}})
	act, err := p.ChooseAction(enemySnapshot(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionAttack {
		t.Fatalf("expected attack with no abilities to pick from, got %+v", act)
	}
}

func TestPolicyReadsTheActingSide(t *testing.T) {
	// Polled for the player side, the policy must consult the player's
	// mana (0 here) and attack despite the enemy having plenty.
	snap := enemySnapshot(40)
	snap.Acting = game.SidePlayer
	snap.Player.Mana = 0

	p := NewRandomPolicy(testCatalog(), &stubSource{floats: []float64{0.9}})
	act, err := p.ChooseAction(snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if act.Kind != game.ActionAttack {
		t.Fatalf("expected attack for the broke acting side, got %+v", act)
	}
}
