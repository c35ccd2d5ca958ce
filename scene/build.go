package scene

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/level"
	"github.com/pthm-cable/aquarium/telemetry"
)

// Sprites builds the sprite table for every configured creature kind.
// Texture IDs are the kind values, with the player included.
func Sprites(cfg *config.Config) aquarium.SpriteTable {
	table := aquarium.SpriteTable{
		components.KindPlayer: {
			Texture: components.TextureID(components.KindPlayer),
			Width:   cfg.Player.Size,
			Height:  cfg.Player.Size,
			Scale:   1,
		},
	}
	for k, cc := range cfg.Derived.Kinds {
		table[k] = components.Sprite{
			Texture: components.TextureID(k),
			Width:   cc.Size,
			Height:  cc.Size,
			Scale:   1,
		}
	}
	return table
}

// Levels builds the level sequence from config.
func Levels(cfg *config.Config) ([]*level.Level, error) {
	out := make([]*level.Level, 0, len(cfg.Levels))
	for i, lc := range cfg.Levels {
		nodes := make([]level.PopulationNode, 0, len(lc.Population))
		for _, pc := range lc.Population {
			k, err := components.ParseKind(pc.Kind)
			if err != nil {
				return nil, fmt.Errorf("level %d: %w", i, err)
			}
			nodes = append(nodes, level.PopulationNode{Kind: k, Population: pc.Count})
		}
		l, err := level.New(lc.TargetScore, nodes...)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

// RulesFrom extracts the scene rules from config.
func RulesFrom(cfg *config.Config) Rules {
	return Rules{
		DamageDebounce:    cfg.Timing.DamageDebounce,
		LifeCap:           cfg.Rules.LifeCap,
		PowerUpEvery:      cfg.Rules.PowerUpEvery,
		PowerStepEvery:    cfg.Rules.PowerStepEvery,
		ClownBonus:        cfg.Rules.ClownBonus,
		CollisionInterval: cfg.Timing.CollisionInterval,
	}
}

// Build wires a complete scene from config: sprites, levels, tank, player
// and rules. Events from the tank and the scene go to sink.
func Build(cfg *config.Config, rng *rand.Rand, sink telemetry.Sink) (*Scene, error) {
	levels, err := Levels(cfg)
	if err != nil {
		return nil, fmt.Errorf("building levels: %w", err)
	}

	specs := make(map[components.Kind]aquarium.CreatureSpec, len(cfg.Derived.Kinds))
	for k, cc := range cfg.Derived.Kinds {
		specs[k] = aquarium.CreatureSpec{Radius: cc.Radius, Value: cc.Value}
	}

	sprites := Sprites(cfg)
	tank, err := aquarium.New(aquarium.Config{
		Width:          cfg.Derived.TankW,
		Height:         cfg.Derived.TankH,
		Margin:         cfg.Tank.Margin,
		WanderInterval: cfg.Timing.WanderInterval,
		MinSpeed:       cfg.Spawn.MinSpeed,
		MaxSpeed:       cfg.Spawn.MaxSpeed,
		Creatures:      specs,
	}, sprites, rng, levels...)
	if err != nil {
		return nil, fmt.Errorf("building aquarium: %w", err)
	}
	tank.SetSink(sink)

	player := NewPlayer(PlayerConfig{
		X:               cfg.Derived.TankW / 2,
		Y:               cfg.Derived.TankH / 2,
		Speed:           cfg.Player.Speed,
		Radius:          cfg.Player.Radius,
		Lives:           cfg.Player.Lives,
		Power:           cfg.Player.Power,
		PowerUpDuration: cfg.Timing.PowerUpDuration,
		Bounds:          tank.Bounds(),
		Sprite:          sprites[components.KindPlayer],
	})

	return New(player, tank, RulesFrom(cfg), sink), nil
}
