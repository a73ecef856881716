package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Seed     int64
	Scale    int
	TPS      int
	Board    string
	Mute     bool
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42, Scale: 1, TPS: 60, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board population and wheel rewards")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Board, "config", c.Board, "YAML board tuning file")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "start with sound muted")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}
