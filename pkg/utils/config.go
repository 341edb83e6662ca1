package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the render and playback settings, file-backed so quality
// can be changed without rebuilding.
type Config struct {
	Render   RenderConfig   `yaml:"render" mapstructure:"render"`
	Playback PlaybackConfig `yaml:"playback" mapstructure:"playback"`
	Viewer   ViewerConfig   `yaml:"viewer" mapstructure:"viewer"`
}

// RenderConfig controls frame geometry and artifact scaling.
type RenderConfig struct {
	Width       int     `yaml:"width" mapstructure:"width"`
	Height      int     `yaml:"height" mapstructure:"height"`
	LineWidth   int     `yaml:"line_width" mapstructure:"line_width"`
	GridN       int     `yaml:"grid_n" mapstructure:"grid_n"`
	MarkerScale float64 `yaml:"marker_scale" mapstructure:"marker_scale"`
	ArrowScale  float64 `yaml:"arrow_scale" mapstructure:"arrow_scale"`
	LHatScale   float64 `yaml:"lhat_scale" mapstructure:"lhat_scale"`
}

// PlaybackConfig controls the time sampling and the freeze.
type PlaybackConfig struct {
	FPS           int     `yaml:"fps" mapstructure:"fps"`
	PtsPerOrbit   int     `yaml:"pts_per_orbit" mapstructure:"pts_per_orbit"`
	FreezeTime    float64 `yaml:"freeze_time" mapstructure:"freeze_time"`
	FreezeSeconds float64 `yaml:"freeze_seconds" mapstructure:"freeze_seconds"`
	TrailFraction float64 `yaml:"trail_fraction" mapstructure:"trail_fraction"`
	RepeatDelayMS int     `yaml:"repeat_delay_ms" mapstructure:"repeat_delay_ms"`
}

// ViewerConfig controls the interactive web viewer.
type ViewerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// DefaultConfig returns the medium-quality defaults: 30 frames per orbit
// during the inspiral, a 5-second freeze at t=-100M, 15 fps playback.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Width:       500,
			Height:      400,
			LineWidth:   2,
			GridN:       10,
			MarkerScale: 15,
			ArrowScale:  25,
			LHatScale:   15,
		},
		Playback: PlaybackConfig{
			FPS:           15,
			PtsPerOrbit:   30,
			FreezeTime:    -100,
			FreezeSeconds: 5,
			TrailFraction: 0.75,
			RepeatDelayMS: 5000,
		},
		Viewer: ViewerConfig{
			Addr: "localhost:8407",
		},
	}
}

// LoadConfig loads configuration from file or creates the default.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	homeDir, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(homeDir, ".bbh-scattering"))
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("BBH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return createDefaultConfig()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the configuration to the default location.
func SaveConfig(config *Config) error {
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".bbh-scattering")
	configFile := filepath.Join(configDir, "config.yaml")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Render.Width <= 0 || config.Render.Height <= 0 {
		return fmt.Errorf("frame dimensions must be positive")
	}
	if config.Render.GridN < 2 {
		return fmt.Errorf("heat-map grid needs at least 2 points per side")
	}
	if config.Playback.FPS <= 0 {
		return fmt.Errorf("fps must be positive")
	}
	if config.Playback.PtsPerOrbit < 2 {
		return fmt.Errorf("need at least 2 points per orbit")
	}
	if config.Playback.TrailFraction < 0 {
		return fmt.Errorf("trail fraction cannot be negative")
	}
	return nil
}

// GetConfigPath returns the path of the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".bbh-scattering", "config.yaml"), nil
}
