package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern      string
	Width        int
	Height       int
	Scale        int
	TPS          int
	Seed         int64
	HistoryLimit int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Pattern:      "glider",
		Width:        64,
		Height:       48,
		Scale:        10,
		TPS:          10,
		Seed:         42,
		HistoryLimit: 512,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern to start from")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized patterns")
	fs.IntVar(&c.HistoryLimit, "history", c.HistoryLimit, "max undo depth, 0 for unbounded")
}
