package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/matthewfreeze/rpg-engine/internal/config"
	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/engine"
	"github.com/matthewfreeze/rpg-engine/internal/genai"
	"github.com/matthewfreeze/rpg-engine/internal/logging"
	"github.com/matthewfreeze/rpg-engine/internal/service"
	"github.com/matthewfreeze/rpg-engine/internal/ui"
	"github.com/matthewfreeze/rpg-engine/internal/version"
)

// run wires the configured pieces together and plays one encounter:
// intro, biome selection, enemy generation, the ATB battle and the outro.
func run(cfg *config.LoadedConfig, seed int64, biome string) {
	logging.Info("rpg-engine starting", logging.Fields{
		constants.LogFieldSeed: seed,
		"version":              version.String(),
	})
	rng := rand.New(rand.NewSource(seed))

	if cfg.EnemyPromptTemplate != "" {
		genai.SetEnemyPromptTemplate(cfg.EnemyPromptTemplate)
	}
	gen := genai.NewGenerator(genai.NewClient(cfg.GeneratorModel, cfg.GeneratorEndpoint), cfg.FallbackFor)

	out := os.Stdout
	render := ui.NewRenderer(out)
	prompter := ui.NewPrompter(os.Stdin, out, cfg.Catalog)

	render.Intro()
	render.PlayerSummary(cfg.Player.Combatant())

	if biome == "" {
		biome = prompter.SelectBiome(cfg.Biomes)
	}
	fmt.Fprintf(out, "\nYou venture into the %s...\n\n", biome)
	fmt.Fprintln(out, "Generating enemy...")

	ctx, cancel := context.WithTimeout(context.Background(), constants.GenerateEnemyTimeoutSecs*time.Second)
	enc, desc, err := service.StartEncounter(ctx, gen, cfg, biome)
	cancel()
	if err != nil {
		logging.Fatal("Failed to set up the encounter", err, nil)
	}
	render.EnemyPanel(desc)

	battle := engine.New(enc, cfg.Catalog, prompter, engine.NewRandomPolicy(cfg.Catalog, rng), rng)
	battle.SetObserver(render.TurnUpdate)

	res, err := battle.Run()
	if err != nil {
		logging.Fatal("Battle aborted", err, nil)
	}
	render.Outro(res, enc.Enemy.Name)
	logging.Info("battle finished", logging.Fields{
		constants.LogFieldWinner: res.Winner,
		constants.LogFieldTurns:  res.Turns,
	})
}
