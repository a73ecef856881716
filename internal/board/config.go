package board

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"forest-merge/internal/animals"
	"forest-merge/internal/economy"
)

// Economy holds starting balances and reward factors.
type Economy struct {
	StartCoins  int `yaml:"start_coins"`
	StartGems   int `yaml:"start_gems"`
	StartPoints int `yaml:"start_points"`
	StartLevel  int `yaml:"start_level"`
	StartExp    int `yaml:"start_exp"`

	// A merge into level L pays L*MergeCoinFactor coins and points and
	// L*MergeExpFactor experience.
	MergeCoinFactor int `yaml:"merge_coin_factor"`
	MergeExpFactor  int `yaml:"merge_exp_factor"`

	AdBonus int `yaml:"ad_bonus"`
}

// Balances converts the starting values into an economy seed.
func (e Economy) Balances() economy.Balances {
	return economy.Balances{
		Coins:       e.StartCoins,
		Gems:        e.StartGems,
		PointsToday: e.StartPoints,
		Level:       e.StartLevel,
		Exp:         e.StartExp,
	}
}

// Spawn tunes the paid spawn button.
type Spawn struct {
	Price    int           `yaml:"price"`
	Limit    int           `yaml:"limit"`
	Cooldown time.Duration `yaml:"cooldown"`
}

// Wheel tunes the reward wheel.
type Wheel struct {
	Cost      int           `yaml:"cost"`
	RewardMin int           `yaml:"reward_min"`
	RewardMax int           `yaml:"reward_max"`
	Duration  time.Duration `yaml:"duration"`

	// Display-only rotation: BaseTurns degrees plus up to Jitter more.
	BaseTurns int `yaml:"base_turns"`
	Jitter    int `yaml:"jitter"`
}

// Timers holds the lifetimes of transient effects.
type Timers struct {
	Notice      time.Duration `yaml:"notice"`
	Celebration time.Duration `yaml:"celebration"`
	AutoMerge   time.Duration `yaml:"auto_merge"`
}

// Config holds the board dimensions and every economy tunable.
type Config struct {
	Cols int   `yaml:"cols"`
	Rows int   `yaml:"rows"`
	Seed int64 `yaml:"seed"`

	FillChance      float64 `yaml:"fill_chance"`
	InitialMaxLevel int     `yaml:"initial_max_level"`

	Economy Economy `yaml:"economy"`
	Spawn   Spawn   `yaml:"spawn"`
	Wheel   Wheel   `yaml:"wheel"`
	Timers  Timers  `yaml:"timers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols:            3,
		Rows:            4,
		Seed:            42,
		FillChance:      0.6,
		InitialMaxLevel: 3,
		Economy: Economy{
			StartCoins:      1250,
			StartGems:       50,
			StartPoints:     150,
			StartLevel:      5,
			StartExp:        450,
			MergeCoinFactor: 10,
			MergeExpFactor:  5,
			AdBonus:         50,
		},
		Spawn: Spawn{
			Price:    100,
			Limit:    3,
			Cooldown: 5 * time.Second,
		},
		Wheel: Wheel{
			Cost:      50,
			RewardMin: 10,
			RewardMax: 250,
			Duration:  4 * time.Second,
			BaseTurns: 1800,
			Jitter:    360,
		},
		Timers: Timers{
			Notice:      3 * time.Second,
			Celebration: 1500 * time.Millisecond,
			AutoMerge:   30 * time.Second,
		},
	}
}

// LoadConfig reads a YAML tuning file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read board config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse board config %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return Apply(DefaultConfig(), cfg)
}

// Apply overrides fields of base from a string map. Unknown keys and values
// that do not parse are ignored.
func Apply(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	setInt(cfg, "cols", &c.Cols)
	setInt(cfg, "rows", &c.Rows)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["fill_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.FillChance = parsed
		}
	}
	setInt(cfg, "initial_max_level", &c.InitialMaxLevel)

	setInt(cfg, "start_coins", &c.Economy.StartCoins)
	setInt(cfg, "start_points", &c.Economy.StartPoints)
	setInt(cfg, "start_level", &c.Economy.StartLevel)
	setInt(cfg, "start_exp", &c.Economy.StartExp)
	setInt(cfg, "merge_coin_factor", &c.Economy.MergeCoinFactor)
	setInt(cfg, "merge_exp_factor", &c.Economy.MergeExpFactor)
	setInt(cfg, "ad_bonus", &c.Economy.AdBonus)

	setInt(cfg, "spawn_price", &c.Spawn.Price)
	setInt(cfg, "spawn_limit", &c.Spawn.Limit)
	setDuration(cfg, "spawn_cooldown", &c.Spawn.Cooldown)

	setInt(cfg, "spin_cost", &c.Wheel.Cost)
	setInt(cfg, "reward_min", &c.Wheel.RewardMin)
	setInt(cfg, "reward_max", &c.Wheel.RewardMax)
	setDuration(cfg, "spin_duration", &c.Wheel.Duration)

	setDuration(cfg, "notice_ttl", &c.Timers.Notice)
	setDuration(cfg, "celebration_ttl", &c.Timers.Celebration)
	setDuration(cfg, "auto_merge_ttl", &c.Timers.AutoMerge)
	return c.normalized()
}

func setInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

func setDuration(cfg map[string]string, key string, dst *time.Duration) {
	if v, ok := cfg[key]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
}

// normalized replaces values the board cannot work with by their defaults.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Cols <= 0 {
		c.Cols = def.Cols
	}
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	if c.FillChance < 0 {
		c.FillChance = 0
	}
	if c.FillChance > 1 {
		c.FillChance = 1
	}
	if c.InitialMaxLevel < animals.MinLevel {
		c.InitialMaxLevel = animals.MinLevel
	}
	if c.InitialMaxLevel > animals.MaxLevel {
		c.InitialMaxLevel = animals.MaxLevel
	}
	if c.Spawn.Price <= 0 {
		c.Spawn.Price = def.Spawn.Price
	}
	if c.Spawn.Limit <= 0 {
		c.Spawn.Limit = def.Spawn.Limit
	}
	if c.Wheel.Cost <= 0 {
		c.Wheel.Cost = def.Wheel.Cost
	}
	if c.Wheel.RewardMax < c.Wheel.RewardMin {
		c.Wheel.RewardMax = c.Wheel.RewardMin
	}
	if c.Wheel.Jitter <= 0 {
		c.Wheel.Jitter = 1
	}
	return c
}
