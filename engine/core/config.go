package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string   `yaml:"title"`
	Width      int32    `yaml:"width"`
	Height     int32    `yaml:"height"`
	VSync      bool     `yaml:"vsync"`
	ClearColor [4]uint8 `yaml:"clear_color"` // RGBA

	// ScratchCapacity sizes the per-frame marshal buffers (entries, not
	// bytes). Zero keeps the scratch package default.
	ScratchCapacity int `yaml:"scratch_capacity"`
}

// Defaults fills zero-valued fields with sensible values.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "fjord"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.ClearColor == ([4]uint8{}) {
		c.ClearColor = [4]uint8{20, 26, 31, 255}
	}
}

// LoadConfig reads a YAML config file and applies defaults.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.Defaults()
	return cfg, nil
}
