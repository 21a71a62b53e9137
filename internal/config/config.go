// Package config holds the skyline demo settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all demo settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Viewport ViewportConfig `yaml:"viewport"`
	Audio    AudioConfig    `yaml:"audio"`
	Assets   AssetsConfig   `yaml:"assets"`
	Scores   ScoresConfig   `yaml:"scores"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds the initial window settings.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// ViewportConfig holds the virtual resolution of the game camera.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRate  int     `yaml:"sample_rate"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// AssetsConfig holds where assets are loaded from. An empty Dir loads no
// files; the demo then draws generated textures.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// ScoresConfig holds the score store location. An empty Path disables it.
type ScoresConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "LDTK - Skyline",
			Width:     800,
			Height:    480,
			Resizable: true,
		},
		Viewport: ViewportConfig{
			Width:  640,
			Height: 360,
		},
		Audio: AudioConfig{
			Enabled:     true,
			SampleRate:  44100,
			SoundVolume: 1,
		},
		Scores: ScoresConfig{
			Path: "~/.skyline/scores.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("config: loading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects settings the demo cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport size %vx%v must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.Audio.SampleRate)
	}
	return nil
}

// SaveTo writes the config as YAML to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
