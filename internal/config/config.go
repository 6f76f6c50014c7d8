// Package config provides the tunables for a paperboy session.
// Values come from defaults, an optional JSON file and finally the
// environment (optionally seeded from a .env file).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read by ApplyEnv.
const (
	EnvConfigPath   = "PAPERBOY_CONFIG"
	EnvMapPath      = "PAPERBOY_MAP"
	EnvSeed         = "PAPERBOY_SEED"
	EnvBaseDuration = "PAPERBOY_BASE_DURATION"
	EnvMute         = "PAPERBOY_MUTE"
)

// Config holds all settings for a session
type Config struct {
	Window   WindowConfig   `json:"window"`
	Delivery DeliveryConfig `json:"delivery"`
	Input    InputConfig    `json:"input"`
	Audio    AudioConfig    `json:"audio"`

	// MapPath points at a JSON map; empty uses the built-in test map.
	MapPath string `json:"map_path"`
}

// WindowConfig defines the window and frame rate
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	TPS    int    `json:"tps"` // Logic ticks per second; dt = 1/TPS
}

// DeliveryConfig defines the scheduler and randomness
type DeliveryConfig struct {
	BaseDuration float64 `json:"base_duration"` // Mean seconds between new targets
	Seed         int64   `json:"seed"`          // 0 picks a time-based seed
}

// InputConfig defines input handling
type InputConfig struct {
	QueueCapacity int    `json:"queue_capacity"` // Max events buffered per frame
	InitialMode   string `json:"initial_mode"`   // "courier" or "path"
}

// AudioConfig defines the delivery chime
type AudioConfig struct {
	Enabled    bool    `json:"enabled"`
	Volume     float64 `json:"volume"` // 0..1
	SampleRate int     `json:"sample_rate"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Paperboy",
			TPS:    60,
		},
		Delivery: DeliveryConfig{
			BaseDuration: 5.0,
			Seed:         0,
		},
		Input: InputConfig{
			QueueCapacity: 64,
			InitialMode:   "courier",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// LoadConfig loads config from a JSON file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks ranges that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Delivery.BaseDuration <= 0 {
		return fmt.Errorf("base duration must be positive, got %v", c.Delivery.BaseDuration)
	}
	switch c.Input.InitialMode {
	case "courier", "path":
	default:
		return fmt.Errorf("unknown initial mode %q", c.Input.InitialMode)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	return nil
}

// DeltaTime returns the fixed frame step in seconds
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.Window.TPS)
}

// ApplyEnv overrides settings from the process environment
func (c *Config) ApplyEnv() error {
	return c.apply(os.LookupEnv)
}

// ApplyEnvFile overrides settings from a .env file without touching the
// process environment
func (c *Config) ApplyEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return c.apply(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

func (c *Config) apply(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMapPath); ok && v != "" {
		c.MapPath = v
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Delivery.Seed = seed
	}
	if v, ok := lookup(EnvBaseDuration); ok && v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvBaseDuration, err)
		}
		c.Delivery.BaseDuration = d
	}
	if v, ok := lookup(EnvMute); ok && v != "" {
		mute, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvMute, err)
		}
		c.Audio.Enabled = !mute
	}
	return c.Validate()
}
