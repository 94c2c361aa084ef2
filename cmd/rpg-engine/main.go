package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/matthewfreeze/rpg-engine/internal/config"
	"github.com/matthewfreeze/rpg-engine/internal/constants"
	"github.com/matthewfreeze/rpg-engine/internal/logging"
	"github.com/matthewfreeze/rpg-engine/internal/version"
)

func main() {
	configPath := flag.String("config", os.Getenv("RPG_CONFIG"), "path to a JSON configuration file (empty uses the built-in defaults)")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the current time)")
	biome := flag.String("biome", "", "battle biome (empty prompts interactively)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// An invalid configuration is the only abort-class error: a malformed
	// catalog or an out-of-range stat must never reach the engine.
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("Missing or invalid configuration", err, logging.Fields{"config_path": *configPath})
	}

	// Environment overrides for the generator; explicit config values win.
	if cfg.GeneratorModel == "" {
		cfg.GeneratorModel = os.Getenv(constants.EnvGeminiModel)
	}
	if cfg.GeneratorEndpoint == "" {
		cfg.GeneratorEndpoint = os.Getenv(constants.EnvGeminiEndpoint)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	run(cfg, s, *biome)
}
