package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the CLI tool configuration
type Config struct {
	Grid      GridConfig      `json:"grid"`
	Tone      ToneConfig      `json:"tone"`
	Algorithm AlgorithmConfig `json:"algorithm"`
	Render    RenderConfig    `json:"render"`
	Output    OutputConfig    `json:"output"`
}

// GridConfig holds the default stitch grid dimensions
type GridConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToneConfig holds default tone correction percentages
type ToneConfig struct {
	Contrast   int `json:"contrast"`
	Brightness int `json:"brightness"`
}

// AlgorithmConfig holds the default algorithm and its parameters
type AlgorithmConfig struct {
	Name          string  `json:"name"`
	Threshold     float64 `json:"threshold"`
	Strength      float64 `json:"dither_strength"`
	BlockSize     int     `json:"adaptive_block_size"`
	Sensitivity   float64 `json:"edge_sensitivity"`
	InvertPattern bool    `json:"invert_pattern"`
}

// RenderConfig holds preview rendering settings
type RenderConfig struct {
	CellSize int    `json:"cell_size"`
	Format   string `json:"format"`
	Quality  int    `json:"quality"`
	Lossless bool   `json:"lossless"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	OutputDir    string `json:"output_dir"`
	WritePreview bool   `json:"write_preview"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			Width:  60,
			Height: 80,
		},
		Tone: ToneConfig{
			Contrast:   100,
			Brightness: 100,
		},
		Algorithm: AlgorithmConfig{
			Name:        "floyd-steinberg",
			Threshold:   128,
			Strength:    100,
			BlockSize:   15,
			Sensitivity: 50,
		},
		Render: RenderConfig{
			CellSize: 12,
			Format:   "png",
			Quality:  90,
		},
		Output: OutputConfig{
			OutputDir:    "./out",
			WritePreview: true,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Grid.Width < 10 || c.Grid.Width > 200 {
		return fmt.Errorf("grid.width must be between 10 and 200")
	}

	if c.Grid.Height < 10 || c.Grid.Height > 200 {
		return fmt.Errorf("grid.height must be between 10 and 200")
	}

	if c.Tone.Contrast < 50 || c.Tone.Contrast > 200 {
		return fmt.Errorf("tone.contrast must be between 50 and 200")
	}

	if c.Tone.Brightness < 50 || c.Tone.Brightness > 150 {
		return fmt.Errorf("tone.brightness must be between 50 and 150")
	}

	if c.Algorithm.Threshold < 0 || c.Algorithm.Threshold > 255 {
		return fmt.Errorf("algorithm.threshold must be between 0 and 255")
	}

	if c.Algorithm.Strength < 0 || c.Algorithm.Strength > 200 {
		return fmt.Errorf("algorithm.dither_strength must be between 0 and 200")
	}

	if c.Algorithm.BlockSize < 3 || c.Algorithm.BlockSize > 31 {
		return fmt.Errorf("algorithm.adaptive_block_size must be between 3 and 31")
	}

	if c.Algorithm.Sensitivity < 10 || c.Algorithm.Sensitivity > 100 {
		return fmt.Errorf("algorithm.edge_sensitivity must be between 10 and 100")
	}

	if c.Render.CellSize < 2 || c.Render.CellSize > 64 {
		return fmt.Errorf("render.cell_size must be between 2 and 64")
	}

	if c.Render.Quality < 1 || c.Render.Quality > 100 {
		return fmt.Errorf("render.quality must be between 1 and 100")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "crochet-pattern", "config.json")
}
