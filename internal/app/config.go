// Package app hosts the window and headless front ends that drive a
// registered scene.
package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Scene  string
	Scale  int
	TPS    int
	Seed   int64
	Steps  int
	Watch  bool
	Glyphs string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Scene:  "maze",
		Scale:  3,
		TPS:    60,
		Seed:   42,
		Steps:  256,
		Watch:  false,
		Glyphs: " .o@#",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for scene reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps to run in headless mode")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "print a text frame per step in headless mode")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "glyph ramp for headless text frames")
}
