// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/aquarium/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig              `yaml:"screen"`
	Tank      TankConfig                `yaml:"tank"`
	Player    PlayerConfig              `yaml:"player"`
	Timing    TimingConfig              `yaml:"timing"`
	Rules     RulesConfig               `yaml:"rules"`
	Spawn     SpawnConfig               `yaml:"spawn"`
	Creatures map[string]CreatureConfig `yaml:"creatures"` // keyed by kind name
	Levels    []LevelConfig             `yaml:"levels"`
	Autopilot AutopilotConfig           `yaml:"autopilot"`
	Telemetry TelemetryConfig           `yaml:"telemetry"`
	Audio     AudioConfig               `yaml:"audio"`
	Assets    AssetsConfig              `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// TankConfig holds tank dimensions. Zero dimensions use the screen size.
type TankConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"` // Creatures stay this far inside the walls
}

// PlayerConfig holds the player creature's starting state.
type PlayerConfig struct {
	Lives  int     `yaml:"lives"`
	Power  int     `yaml:"power"`
	Speed  float64 `yaml:"speed"` // Base speed in pixels per frame
	Radius float64 `yaml:"radius"`
	Sprite string  `yaml:"sprite"`
	Size   float32 `yaml:"size"`
	Color  string  `yaml:"color"`
	Glyph  string  `yaml:"glyph"`
}

// TimingConfig holds frame-based durations. All values are in frames.
type TimingConfig struct {
	DT                float64 `yaml:"dt"`                 // Seconds per frame
	CollisionInterval int     `yaml:"collision_interval"` // Run the collision pass every N frames
	WanderInterval    int     `yaml:"wander_interval"`    // PescaoCute re-randomizes every N frames
	PowerUpDuration   int     `yaml:"powerup_duration"`
	DamageDebounce    int     `yaml:"damage_debounce"`
}

// RulesConfig holds scoring rules.
type RulesConfig struct {
	LifeCap        int `yaml:"life_cap"`
	PowerUpEvery   int `yaml:"powerup_every"`    // Score multiple that starts a power-up
	PowerStepEvery int `yaml:"power_step_every"` // Score multiple that raises power
	ClownBonus     int `yaml:"clown_bonus"`
}

// SpawnConfig holds NPC spawn parameters.
type SpawnConfig struct {
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
}

// CreatureConfig describes one NPC kind.
type CreatureConfig struct {
	Value  int     `yaml:"value"`
	Radius float64 `yaml:"radius"`
	Sprite string  `yaml:"sprite"`
	Size   float32 `yaml:"size"`
	Color  string  `yaml:"color"` // #rrggbb, used when the sprite file is missing
	Glyph  string  `yaml:"glyph"` // Terminal glyph
}

// LevelConfig describes one level of the progression.
type LevelConfig struct {
	TargetScore int                `yaml:"target_score"`
	Population  []PopulationConfig `yaml:"population"`
}

// PopulationConfig is one population node of a level.
type PopulationConfig struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// AutopilotConfig holds headless steering parameters.
type AutopilotConfig struct {
	PanicRadius float64 `yaml:"panic_radius"` // Flee threats closer than this
}

// TelemetryConfig holds stats logging parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // Frames averaged by the perf collector
}

// AudioConfig holds sound cue parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Log2 gain, 0 = unity
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	TankW, TankH float64
	Kinds        map[components.Kind]CreatureConfig
	PlayerTint   components.Tint
}

var (
	// ErrNoLevels is returned when the config defines no levels.
	ErrNoLevels = errors.New("config: no levels")
	// ErrInvalid is wrapped by every other validation failure.
	ErrInvalid = errors.New("config: invalid")
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := cfg.Merge(data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Merge overlays YAML data on c. Only fields present in data change; the
// levels list is replaced as a whole, creature entries per kind.
func (c *Config) Merge(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate checks the config for values the game cannot run with.
func (c *Config) Validate() error {
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}
	for name, cc := range c.Creatures {
		k, err := components.ParseKind(name)
		if err != nil || !k.IsNPC() {
			return fmt.Errorf("%w: creature %q is not an NPC kind", ErrInvalid, name)
		}
		if cc.Radius <= 0 {
			return fmt.Errorf("%w: creature %s radius %v", ErrInvalid, name, cc.Radius)
		}
	}
	for i, lv := range c.Levels {
		if lv.TargetScore < 0 {
			return fmt.Errorf("%w: level %d target score %d", ErrInvalid, i, lv.TargetScore)
		}
		seen := make(map[components.Kind]bool)
		for _, p := range lv.Population {
			k, err := components.ParseKind(p.Kind)
			if err != nil || !k.IsNPC() {
				return fmt.Errorf("%w: level %d kind %q", ErrInvalid, i, p.Kind)
			}
			if seen[k] {
				return fmt.Errorf("%w: level %d lists %s twice", ErrInvalid, i, k)
			}
			seen[k] = true
			if p.Count < 0 {
				return fmt.Errorf("%w: level %d %s count %d", ErrInvalid, i, k, p.Count)
			}
		}
	}
	if c.Player.Power < 1 {
		return fmt.Errorf("%w: player power %d", ErrInvalid, c.Player.Power)
	}
	if c.Player.Lives < 0 {
		return fmt.Errorf("%w: player lives %d", ErrInvalid, c.Player.Lives)
	}
	if c.Spawn.MinSpeed < 1 || c.Spawn.MaxSpeed < c.Spawn.MinSpeed {
		return fmt.Errorf("%w: spawn speed range [%d, %d]", ErrInvalid, c.Spawn.MinSpeed, c.Spawn.MaxSpeed)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Tank dimensions default to screen size if not specified
	w := c.Tank.Width
	if w == 0 {
		w = c.Screen.Width
	}
	h := c.Tank.Height
	if h == 0 {
		h = c.Screen.Height
	}
	c.Derived.TankW = float64(w)
	c.Derived.TankH = float64(h)

	c.Derived.Kinds = make(map[components.Kind]CreatureConfig, len(c.Creatures))
	for name, cc := range c.Creatures {
		if k, err := components.ParseKind(name); err == nil {
			c.Derived.Kinds[k] = cc
		}
	}

	c.Derived.PlayerTint, _ = ParseColor(c.Player.Color)
}

// Creature returns the settings for kind k.
func (c *Config) Creature(k components.Kind) (CreatureConfig, bool) {
	cc, ok := c.Derived.Kinds[k]
	return cc, ok
}

// ParseColor parses a #rrggbb color. Empty input yields opaque white.
func ParseColor(s string) (components.Tint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return components.TintNone, nil
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return components.TintNone, fmt.Errorf("parse color %q: %w", s, err)
	}
	return components.Tint{R: r, G: g, B: b, A: 255}, nil
}

// Clone returns a deep copy of c with derived values recomputed.
func (c *Config) Clone() (*Config, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	out := &Config{}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("copying config: %w", err)
	}
	out.computeDerived()
	return out, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
