package universe

import "strconv"

// Config holds the parameters shared by the bundled engines.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Rule   string
	// Wolfram code for the elementary engine.
	Code uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Seed: 42, Rule: "B3/S23", Code: 110}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := ParseRule(v); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["code"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Code = uint8(parsed)
		}
	}
	return c
}
