// Package config loads lifeview settings from YAML files and command-line flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Colors holds hex colour strings for the board.
type Colors struct {
	Grid  string `yaml:"grid"`
	Alive string `yaml:"alive"`
	Dead  string `yaml:"dead"`
}

// Config represents the runtime parameters for the application.
type Config struct {
	Engine string            `yaml:"engine"`
	Width  int               `yaml:"width"`
	Height int               `yaml:"height"`
	Seed   int64             `yaml:"seed"`
	Ticks  int               `yaml:"ticks"`
	TPS    int               `yaml:"tps"`
	Params map[string]string `yaml:"params"`
	Colors Colors            `yaml:"colors"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine: "life",
		Width:  64,
		Height: 64,
		Seed:   42,
		Ticks:  1,
		TPS:    60,
		Colors: Colors{Grid: "#CCCCCC", Alive: "#FFFFFF", Dead: "#000000"},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for engine reset")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "engine steps per frame")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second requested from the host")
	fs.StringToStringVar(&c.Params, "param", c.Params, "extra engine parameter key=value (repeatable)")
	fs.StringVar(&c.Colors.Grid, "grid-color", c.Colors.Grid, "gridline colour")
	fs.StringVar(&c.Colors.Alive, "alive-color", c.Colors.Alive, "live cell colour")
	fs.StringVar(&c.Colors.Dead, "dead-color", c.Colors.Dead, "dead cell colour")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Engine == "" {
		return fmt.Errorf("%w: engine is empty", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.Ticks <= 0 {
		return fmt.Errorf("%w: ticks %d must be positive", ErrInvalid, c.Ticks)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, c.TPS)
	}
	if _, _, _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// EngineParams returns the flag-style map handed to the engine factory.
// Explicit params win over the top-level settings.
func (c *Config) EngineParams() map[string]string {
	out := map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	for k, v := range c.Params {
		out[k] = v
	}
	return out
}

// Palette parses the grid, alive and dead colours.
func (c *Config) Palette() (grid, alive, dead color.Color, err error) {
	parse := func(name, hex string) (color.Color, error) {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %s colour %q: %v", ErrInvalid, name, hex, err)
		}
		return col, nil
	}
	if grid, err = parse("grid", c.Colors.Grid); err != nil {
		return nil, nil, nil, err
	}
	if alive, err = parse("alive", c.Colors.Alive); err != nil {
		return nil, nil, nil, err
	}
	if dead, err = parse("dead", c.Colors.Dead); err != nil {
		return nil, nil, nil, err
	}
	return grid, alive, dead, nil
}

// Overlay copies the settings of every flag changed on fs from src, so that
// explicit flags win over values read from a file. src is the Config the
// flags were bound to.
func (c *Config) Overlay(fs *pflag.FlagSet, src *Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "engine":
			c.Engine = src.Engine
		case "width":
			c.Width = src.Width
		case "height":
			c.Height = src.Height
		case "seed":
			c.Seed = src.Seed
		case "ticks":
			c.Ticks = src.Ticks
		case "tps":
			c.TPS = src.TPS
		case "param":
			if c.Params == nil {
				c.Params = map[string]string{}
			}
			for k, v := range src.Params {
				c.Params[k] = v
			}
		case "grid-color":
			c.Colors.Grid = src.Colors.Grid
		case "alive-color":
			c.Colors.Alive = src.Colors.Alive
		case "dead-color":
			c.Colors.Dead = src.Colors.Dead
		}
	})
}
