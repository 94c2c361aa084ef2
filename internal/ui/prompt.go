package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matthewfreeze/rpg-engine/internal/engine"
	"github.com/matthewfreeze/rpg-engine/internal/game"
)

// Prompter is the interactive input provider for the controlled side. It
// reads menu selections line by line; a cancelled spell submenu returns the
// none-action so the engine re-polls without consuming the turn.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	render  *Renderer
	catalog game.Catalog
}

func NewPrompter(in io.Reader, out io.Writer, catalog game.Catalog) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		render:  NewRenderer(out),
		catalog: catalog,
	}
}

// ChooseAction shows the turn menu and returns the selected action. An
// unrecognized top-level entry re-prompts locally; read failures (closed
// stdin) propagate and abort the encounter.
func (p *Prompter) ChooseAction(snap game.Snapshot) (engine.Action, error) {
	fmt.Fprintf(p.out, "\n%s is ready to act!\n", snap.Player.Name)
	p.render.Status(snap)
	p.render.BattleLog(snap)
	for {
		fmt.Fprintln(p.out, "  [a] Attack   [m] Magic   [w] Wait")
		choice, err := p.readLine("Choose an action: ")
		if err != nil {
			return engine.Action{}, err
		}
		switch choice {
		case "a", "attack", "1":
			return engine.Action{Kind: game.ActionAttack}, nil
		case "m", "magic", "2":
			return p.chooseSpell(snap)
		case "w", "wait", "3":
			return engine.Action{Kind: game.ActionWait}, nil
		default:
			fmt.Fprintln(p.out, "Invalid choice!")
		}
	}
}

// chooseSpell shows the spell submenu. "0"/"b"/"back" and anything
// unrecognized cancel back to the none-action; the engine treats that as a
// non-turn-consuming retry and polls again.
func (p *Prompter) chooseSpell(snap game.Snapshot) (engine.Action, error) {
	if p.catalog.Len() == 0 {
		fmt.Fprintln(p.out, "You know no spells.")
		return engine.Action{}, nil
	}
	fmt.Fprintf(p.out, "Spells (MP %d/%d):\n", snap.Player.Mana, snap.Player.MaxMana)
	for i := 0; i < p.catalog.Len(); i++ {
		a := p.catalog.At(i)
		fmt.Fprintf(p.out, "  %d. %-10s %2d MP, power %d\n", i+1, a.Name, a.ManaCost, a.Power)
	}
	fmt.Fprintln(p.out, "  0. Back")

	choice, err := p.readLine("Choose a spell: ")
	if err != nil {
		return engine.Action{}, err
	}
	if choice == "0" || choice == "b" || choice == "back" {
		return engine.Action{}, nil
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > p.catalog.Len() {
		fmt.Fprintln(p.out, "No such spell.")
		return engine.Action{}, nil
	}
	return engine.Action{Kind: game.ActionCast, Ability: p.catalog.At(n - 1).Name}, nil
}

// SelectBiome prompts over the configured biome list. Empty or invalid
// input falls back to the first biome; a read failure also settles on the
// first biome so a piped session still starts.
func (p *Prompter) SelectBiome(biomes []string) string {
	fmt.Fprintln(p.out, "Select a biome for your battle:")
	for i, b := range biomes {
		fmt.Fprintf(p.out, "  %d. %s\n", i+1, b)
	}
	choice, err := p.readLine("Enter biome number: ")
	if err != nil {
		return biomes[0]
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(biomes) {
		return biomes[0]
	}
	return biomes[n-1]
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
