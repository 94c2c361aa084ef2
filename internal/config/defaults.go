package config

import (
	"github.com/matthewfreeze/rpg-engine/internal/game"
	"github.com/matthewfreeze/rpg-engine/internal/keys"
)

// Defaults returns the built-in configuration, so the binary runs with zero
// setup: the classic hero sheet, the four-spell catalog, the biome list and
// the fallback bestiary.
func Defaults() *LoadedConfig {
	fallbacks := []game.EnemyDescriptor{
		{
			Name:        "Magitek Armor",
			Description: "A mechanical soldier powered by magical energy, its metal frame glows with an eerie blue light.",
			Health:      80,
			Mana:        20,
			Strength:    15,
			Magic:       12,
			Speed:       8,
			Weakness:    game.ElementThunder,
		},
		{
			Name:        "Sky Serpent",
			Description: "A winged serpent that rides the wind currents high above the clouds.",
			Health:      70,
			Mana:        30,
			Strength:    12,
			Magic:       16,
			Speed:       10,
			Weakness:    game.ElementIce,
		},
		{
			Name:        "Doom Gaze",
			Description: "A spectral entity that feeds on despair, its form constantly shifting and flickering.",
			Health:      90,
			Mana:        35,
			Strength:    18,
			Magic:       14,
			Speed:       7,
			Weakness:    game.ElementFire,
		},
	}

	return &LoadedConfig{
		Player: PlayerTemplate{
			Name:     "Terra",
			Health:   100,
			Mana:     50,
			Strength: 16,
			Magic:    18,
			Speed:    12,
		},
		Catalog: game.NewCatalog([]game.Ability{
			{Name: "Fire", ManaCost: 10, Power: 20, Element: game.ElementFire},
			{Name: "Blizzard", ManaCost: 10, Power: 20, Element: game.ElementIce},
			{Name: "Thunder", ManaCost: 10, Power: 20, Element: game.ElementThunder},
			{Name: "Cure", ManaCost: 8, Power: 30, Element: game.ElementHealing},
		}),
		Biomes: []string{
			"Magitek Factory",
			"Floating Continent",
			"World of Ruin",
			"Vector Imperial Base",
			"Phantom Forest",
		},
		Fallbacks: map[string]game.EnemyDescriptor{
			keys.BiomeKey("Magitek Factory"):    fallbacks[0],
			keys.BiomeKey("Floating Continent"): fallbacks[1],
			keys.BiomeKey("World of Ruin"):      fallbacks[2],
		},
		DefaultFallback: game.EnemyDescriptor{
			Name:        "Wild Beast",
			Description: "A mysterious creature that lurks in the shadows.",
			Health:      60,
			Mana:        15,
			Strength:    14,
			Magic:       10,
			Speed:       9,
			Weakness:    game.ElementFire,
		},
	}
}
