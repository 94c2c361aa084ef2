package game

import "testing"

func TestApplyDamageClampsAtZero(t *testing.T) {
	c := NewCombatant("Terra", 10, 5, 3, 3, 3, ElementNone)

	if removed := c.ApplyDamage(4); removed != 4 {
		t.Fatalf("expected 4 damage removed, got %d", removed)
	}
	if c.Health != 6 {
		t.Fatalf("expected health 6, got %d", c.Health)
	}
	if removed := c.ApplyDamage(50); removed != 6 {
		t.Fatalf("expected overkill clamped to 6, got %d", removed)
	}
	if c.Health != 0 {
		t.Fatalf("expected health 0, got %d", c.Health)
	}
	if c.Alive() {
		t.Fatalf("expected combatant at 0 health to be dead")
	}
	if removed := c.ApplyDamage(3); removed != 0 {
		t.Fatalf("expected no damage removed from dead combatant, got %d", removed)
	}
}

func TestApplyDamageIgnoresNonPositiveAmounts(t *testing.T) {
	c := NewCombatant("Terra", 10, 5, 3, 3, 3, ElementNone)
	if removed := c.ApplyDamage(0); removed != 0 || c.Health != 10 {
		t.Fatalf("expected zero damage to change nothing, removed=%d health=%d", removed, c.Health)
	}
	if removed := c.ApplyDamage(-5); removed != 0 || c.Health != 10 {
		t.Fatalf("expected negative damage to change nothing, removed=%d health=%d", removed, c.Health)
	}
}

func TestHealCapsAtMaxHealth(t *testing.T) {
	c := NewCombatant("Terra", 20, 5, 3, 3, 3, ElementNone)
	c.ApplyDamage(15)

	if restored := c.Heal(8); restored != 8 {
		t.Fatalf("expected 8 restored, got %d", restored)
	}
	if restored := c.Heal(100); restored != 7 {
		t.Fatalf("expected heal clamped to 7, got %d", restored)
	}
	if c.Health != c.MaxHealth {
		t.Fatalf("expected full health, got %d/%d", c.Health, c.MaxHealth)
	}
	if restored := c.Heal(5); restored != 0 {
		t.Fatalf("expected no healing at full health, got %d", restored)
	}
}

func TestSpendManaIsTheOnlyCastGate(t *testing.T) {
	c := NewCombatant("Terra", 10, 12, 3, 3, 3, ElementNone)

	if !c.SpendMana(10) {
		t.Fatalf("expected spend of 10 from 12 to succeed")
	}
	if c.Mana != 2 {
		t.Fatalf("expected mana 2 after spend, got %d", c.Mana)
	}
	if c.SpendMana(3) {
		t.Fatalf("expected spend of 3 from 2 to fail")
	}
	if c.Mana != 2 {
		t.Fatalf("expected failed spend to leave mana unchanged, got %d", c.Mana)
	}
	if !c.SpendMana(2) {
		t.Fatalf("expected exact spend to succeed")
	}
	if c.Mana != 0 {
		t.Fatalf("expected mana 0, got %d", c.Mana)
	}
	if c.SpendMana(-1) {
		t.Fatalf("expected negative cost to be rejected")
	}
}

func TestRestoreManaCapsAtMaxMana(t *testing.T) {
	c := NewCombatant("Terra", 10, 30, 3, 3, 3, ElementNone)
	c.SpendMana(25)

	if restored := c.RestoreMana(10); restored != 10 {
		t.Fatalf("expected 10 restored, got %d", restored)
	}
	if restored := c.RestoreMana(100); restored != 15 {
		t.Fatalf("expected restore clamped to 15, got %d", restored)
	}
	if c.Mana != c.MaxMana {
		t.Fatalf("expected full mana, got %d/%d", c.Mana, c.MaxMana)
	}
}

func TestAdvanceReadinessSaturatesAtGaugeMax(t *testing.T) {
	c := NewCombatant("Terra", 10, 5, 3, 3, 12, ElementNone)

	for tick := 1; tick <= 8; tick++ {
		if ready := c.AdvanceReadiness(1); ready {
			t.Fatalf("expected not ready at tick %d (gauge %d)", tick, c.Gauge)
		}
		if c.Gauge != tick*12 {
			t.Fatalf("expected gauge %d at tick %d, got %d", tick*12, tick, c.Gauge)
		}
	}
	if ready := c.AdvanceReadiness(1); !ready {
		t.Fatalf("expected ready on tick 9, gauge %d", c.Gauge)
	}
	if c.Gauge != 100 {
		t.Fatalf("expected gauge clamped to 100, got %d", c.Gauge)
	}
	// Saturated gauges must stay saturated across further ticks.
	c.AdvanceReadiness(1)
	if c.Gauge != 100 {
		t.Fatalf("expected gauge to stay at 100, got %d", c.Gauge)
	}

	c.ResetReadiness()
	if c.Gauge != 0 || c.Ready() {
		t.Fatalf("expected empty gauge after reset, got %d", c.Gauge)
	}
}

func TestNewCombatantNormalizesWeakness(t *testing.T) {
	c := NewCombatant("Golem", 10, 5, 3, 3, 3, "FIRE")
	if c.Weakness != ElementFire {
		t.Fatalf("expected normalized weakness %q, got %q", ElementFire, c.Weakness)
	}
	if c.Health != c.MaxHealth || c.Mana != c.MaxMana || c.Gauge != 0 {
		t.Fatalf("expected full health/mana and empty gauge, got %d/%d %d/%d gauge=%d",
			c.Health, c.MaxHealth, c.Mana, c.MaxMana, c.Gauge)
	}
}

func TestEncounterLogKeepsMostRecentEntries(t *testing.T) {
	e := NewEncounter(
		NewCombatant("Terra", 10, 5, 3, 3, 3, ElementNone),
		NewCombatant("Beast", 10, 5, 3, 3, 3, ElementFire),
	)
	for i := 0; i < 8; i++ {
		e.AppendLog(TurnOutcome{Actor: "Terra", Kind: ActionAttack, Amount: i})
	}
	if len(e.Log) != 5 {
		t.Fatalf("expected log bounded to 5 entries, got %d", len(e.Log))
	}
	if e.Log[0].Amount != 3 || e.Log[4].Amount != 7 {
		t.Fatalf("expected entries 3..7 retained, got %d..%d", e.Log[0].Amount, e.Log[4].Amount)
	}
}

func TestSnapshotIsDetachedFromEncounter(t *testing.T) {
	e := NewEncounter(
		NewCombatant("Terra", 100, 50, 16, 18, 12, ElementNone),
		NewCombatant("Beast", 60, 15, 14, 10, 9, ElementFire),
	)
	e.AppendLog(TurnOutcome{Actor: "Terra", Kind: ActionWait, Message: "Terra waits."})

	snap := e.Snapshot()
	snap.Player.Health = 1
	snap.Log[0].Message = "changed"

	if e.Player.Health != 100 {
		t.Fatalf("expected snapshot mutation not to touch encounter, health=%d", e.Player.Health)
	}
	if e.Log[0].Message != "Terra waits." {
		t.Fatalf("expected snapshot log copy, got %q", e.Log[0].Message)
	}

	e.Player.ApplyDamage(10)
	if snap.Player.Health != 1 {
		t.Fatalf("expected encounter mutation not to touch snapshot, health=%d", snap.Player.Health)
	}
	if snap.Ended {
		t.Fatalf("expected running encounter snapshot not ended")
	}
}
