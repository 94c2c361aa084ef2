package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/matthewfreeze/rpg-engine/internal/game"
	"github.com/matthewfreeze/rpg-engine/internal/keys"
)

type playerEntry struct {
	Name     string `json:"name"`
	Health   int    `json:"health"`
	Mana     int    `json:"mana"`
	Strength int    `json:"strength"`
	Magic    int    `json:"magic"`
	Speed    int    `json:"speed"`
}

type abilityEntry struct {
	Name     string `json:"name"`
	ManaCost int    `json:"mana_cost"`
	Power    int    `json:"power"`
	Element  string `json:"element"`
}

// fallbackEntry pairs a biome tag with the enemy served when generation
// fails. An empty biome marks the generic default row.
type fallbackEntry struct {
	Biome       string `json:"biome"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Health      int    `json:"hp"`
	Mana        int    `json:"mp"`
	Strength    int    `json:"strength"`
	Magic       int    `json:"magic"`
	Speed       int    `json:"speed"`
	Weakness    string `json:"weakness"`
}

type rawConfig struct {
	Player      *playerEntry    `json:"player"`
	AbilityList []abilityEntry  `json:"ability_list"`
	Biomes      []string        `json:"biomes"`
	Fallbacks   []fallbackEntry `json:"fallback_enemies"`
	Generator   *struct {
		Model    string `json:"model"`
		Endpoint string `json:"endpoint"`
		// Optional enemy prompt template used to generate opponents.
		// Use the token {{biome}} where the chosen biome name will be
		// substituted. If omitted, a default prompt is used.
		EnemyPrompt string `json:"enemy_prompt"`
	} `json:"generator"`
}

// PlayerTemplate is the configured hero sheet; a fresh combatant is minted
// from it for every encounter.
type PlayerTemplate struct {
	Name     string
	Health   int
	Mana     int
	Strength int
	Magic    int
	Speed    int
}

// Combatant builds the battle-ready player at full health and mana.
func (p PlayerTemplate) Combatant() *game.Combatant {
	return game.NewCombatant(p.Name, p.Health, p.Mana, p.Strength, p.Magic, p.Speed, game.ElementNone)
}

// LoadedConfig contains everything encounter setup needs: the player
// template, the ability catalog, the biome list, the fallback bestiary and
// the generator settings.
type LoadedConfig struct {
	Player  PlayerTemplate
	Catalog game.Catalog
	Biomes  []string
	// Fallbacks is keyed by canonical biome key; DefaultFallback serves
	// unrecognized tags.
	Fallbacks       map[string]game.EnemyDescriptor
	DefaultFallback game.EnemyDescriptor
	// Generator settings; empty values fall back to the constants package
	// defaults at client construction.
	GeneratorModel    string
	GeneratorEndpoint string
	// Optional enemy prompt template loaded from config
	EnemyPromptTemplate string
}

// FallbackFor returns the fallback enemy for the biome tag, defaulting to
// the generic entry when the tag is unrecognized.
func (c *LoadedConfig) FallbackFor(biome string) game.EnemyDescriptor {
	if d, ok := c.Fallbacks[keys.BiomeKey(biome)]; ok {
		return d
	}
	return c.DefaultFallback
}

// Load reads the JSON configuration at path. An empty path returns the
// built-in defaults; in a provided file each absent section falls back to
// its default while a present section replaces it entirely after
// validation. Validation failures abort setup — a malformed catalog or an
// out-of-range stat must never reach the engine.
func Load(path string) (*LoadedConfig, error) {
	if path == "" {
		return Defaults(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Defaults()

	if rc.Player != nil {
		p := PlayerTemplate{
			Name:     strings.TrimSpace(rc.Player.Name),
			Health:   rc.Player.Health,
			Mana:     rc.Player.Mana,
			Strength: rc.Player.Strength,
			Magic:    rc.Player.Magic,
			Speed:    rc.Player.Speed,
		}
		if p.Name == "" {
			return nil, fmt.Errorf("config file %s: player entry missing 'name'", path)
		}
		if p.Health < 1 {
			return nil, fmt.Errorf("config file %s: player '%s' needs at least 1 health", path, p.Name)
		}
		if p.Speed < 1 {
			return nil, fmt.Errorf("config file %s: player '%s' needs at least 1 speed or the gauge never fills", path, p.Name)
		}
		if p.Mana < 0 || p.Strength < 0 || p.Magic < 0 {
			return nil, fmt.Errorf("config file %s: player '%s' stats must be non-negative", path, p.Name)
		}
		out.Player = p
	}

	if rc.AbilityList != nil {
		abilities := make([]game.Ability, 0, len(rc.AbilityList))
		nameSet := make(map[string]struct{}, len(rc.AbilityList))
		for _, a := range rc.AbilityList {
			name := strings.TrimSpace(a.Name)
			if name == "" {
				return nil, fmt.Errorf("config file %s: ability entry missing 'name'", path)
			}
			ln := strings.ToLower(name)
			if _, exists := nameSet[ln]; exists {
				return nil, fmt.Errorf("config file %s: duplicate ability name '%s'", path, name)
			}
			nameSet[ln] = struct{}{}
			if a.ManaCost < 0 || a.Power < 0 {
				return nil, fmt.Errorf("config file %s: ability '%s' cost and power must be non-negative", path, name)
			}
			element := game.Element(a.Element).Normalize()
			switch element {
			case game.ElementNone, game.ElementFire, game.ElementIce, game.ElementThunder, game.ElementHealing:
			default:
				return nil, fmt.Errorf("config file %s: ability '%s' has unknown element '%s'", path, name, a.Element)
			}
			abilities = append(abilities, game.Ability{Name: name, ManaCost: a.ManaCost, Power: a.Power, Element: element})
		}
		out.Catalog = game.NewCatalog(abilities)
	}

	if rc.Biomes != nil {
		if len(rc.Biomes) == 0 {
			return nil, fmt.Errorf("config file %s: biomes is empty (provide 'biomes' array)", path)
		}
		biomes := make([]string, 0, len(rc.Biomes))
		keySet := make(map[string]struct{}, len(rc.Biomes))
		for _, b := range rc.Biomes {
			name := strings.TrimSpace(b)
			if name == "" {
				return nil, fmt.Errorf("config file %s: biome entry must not be empty", path)
			}
			key := keys.BiomeKey(name)
			if _, exists := keySet[key]; exists {
				return nil, fmt.Errorf("config file %s: duplicate biome '%s'", path, name)
			}
			keySet[key] = struct{}{}
			biomes = append(biomes, name)
		}
		out.Biomes = biomes
	}

	if rc.Fallbacks != nil {
		fallbacks := make(map[string]game.EnemyDescriptor, len(rc.Fallbacks))
		var defaultFallback *game.EnemyDescriptor
		for _, f := range rc.Fallbacks {
			d := game.EnemyDescriptor{
				Name:        f.Name,
				Description: f.Description,
				Health:      f.Health,
				Mana:        f.Mana,
				Strength:    f.Strength,
				Magic:       f.Magic,
				Speed:       f.Speed,
				Weakness:    game.Element(f.Weakness),
			}
			if err := d.Validate(); err != nil {
				return nil, fmt.Errorf("config file %s: fallback enemy '%s': %w", path, f.Name, err)
			}
			key := keys.BiomeKey(f.Biome)
			if key == "" || key == "default" {
				if defaultFallback != nil {
					return nil, fmt.Errorf("config file %s: more than one default fallback enemy", path)
				}
				dd := d
				defaultFallback = &dd
				continue
			}
			if _, exists := fallbacks[key]; exists {
				return nil, fmt.Errorf("config file %s: duplicate fallback biome '%s'", path, f.Biome)
			}
			fallbacks[key] = d
		}
		if defaultFallback == nil {
			return nil, fmt.Errorf("config file %s: fallback_enemies needs a default entry (empty biome)", path)
		}
		out.Fallbacks = fallbacks
		out.DefaultFallback = *defaultFallback
	}

	if rc.Generator != nil {
		out.GeneratorModel = strings.TrimSpace(rc.Generator.Model)
		out.GeneratorEndpoint = strings.TrimSpace(rc.Generator.Endpoint)
		out.EnemyPromptTemplate = strings.TrimSpace(rc.Generator.EnemyPrompt)
	}

	return out, nil
}
