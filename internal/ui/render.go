package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// Renderer writes the battle presentation as plain text. It only ever
// observes snapshots; nothing here mutates game state.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Intro prints the title banner and a short explanation of the ATB system.
func (r *Renderer) Intro() {
	fmt.Fprintln(r.out, "=========================================")
	fmt.Fprintln(r.out, "           RPG ENGINE - ATB BATTLE")
	fmt.Fprintln(r.out, "=========================================")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Welcome to a world of magic and machinery!")
	fmt.Fprintln(r.out, "In this Active Time Battle system, your turns are")
	fmt.Fprintln(r.out, "determined by your Speed stat. Choose your actions")
	fmt.Fprintln(r.out, "wisely and exploit enemy weaknesses!")
	fmt.Fprintln(r.out)
}

// PlayerSummary prints the hero sheet shown before biome selection.
func (r *Renderer) PlayerSummary(c *game.Combatant) {
	fmt.Fprintf(r.out, "You are playing as: %s\n", c.Name)
	fmt.Fprintf(r.out, "  HP: %d | MP: %d | STR: %d | MAG: %d | SPD: %d\n\n",
		c.MaxHealth, c.MaxMana, c.Strength, c.Magic, c.Speed)
}

// EnemyPanel announces the generated opponent with its description and
// weakness.
func (r *Renderer) EnemyPanel(d game.EnemyDescriptor) {
	fmt.Fprintln(r.out, "--- Enemy Encountered! ---")
	fmt.Fprintf(r.out, "%s\n\n", d.Name)
	fmt.Fprintf(r.out, "%s\n\n", d.Description)
	fmt.Fprintf(r.out, "Weakness: %s\n", d.Weakness)
	fmt.Fprintln(r.out, "--------------------------")
	fmt.Fprintln(r.out)
}

// Status prints both combatants' health, mana and readiness gauges.
func (r *Renderer) Status(s game.Snapshot) {
	r.statusLine(s.Player)
	r.statusLine(s.Enemy)
}

func (r *Renderer) statusLine(c game.Combatant) {
	weak := ""
	if c.Weakness != game.ElementNone {
		weak = fmt.Sprintf(" (Weak: %s)", c.Weakness)
	}
	fmt.Fprintf(r.out, "%-20s HP %3d/%-3d  MP %2d/%-2d  ATB %s\n",
		c.Name+weak, c.Health, c.MaxHealth, c.Mana, c.MaxMana, gaugeBar(c.Gauge))
}

// gaugeBar renders the readiness gauge as a ten-segment bar.
func gaugeBar(gauge int) string {
	filled := gauge / 10
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + fmt.Sprintf("] %3d/%d", gauge, constants.GaugeMax)
}

// TurnUpdate is the engine observer: after a resolved turn it prints the
// newest log line followed by the fresh status. Registered via
// Battle.SetObserver.
func (r *Renderer) TurnUpdate(s game.Snapshot) {
	if len(s.Log) > 0 {
		fmt.Fprintf(r.out, "\n%s\n", s.Log[len(s.Log)-1].Message)
	}
	if !s.Ended {
		r.Status(s)
	}
}

// BattleLog prints the bounded recent-action log.
func (r *Renderer) BattleLog(s game.Snapshot) {
	if len(s.Log) == 0 {
		return
	}
	fmt.Fprintln(r.out, "--- Battle Log ---")
	for _, o := range s.Log {
		fmt.Fprintf(r.out, "  %s\n", o.Message)
	}
	fmt.Fprintln(r.out, "------------------")
}

// Outro prints the victory or defeat panel.
func (r *Renderer) Outro(res game.Result, enemyName string) {
	fmt.Fprintln(r.out)
	if res.PlayerWon {
		fmt.Fprintln(r.out, "=== Victory! ===")
		fmt.Fprintf(r.out, "You defeated the %s!\n", enemyName)
		fmt.Fprintln(r.out, "Thank you for playing!")
	} else {
		fmt.Fprintln(r.out, "=== Defeat! ===")
		fmt.Fprintf(r.out, "You were defeated by the %s...\n", enemyName)
		fmt.Fprintln(r.out, "Better luck next time...")
	}
}
