package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	Coverage       float64       `json:"coverage"`
	Seed           int64         `json:"seed"`
	MaxGenerations int           `json:"max_generations"`
	Debug          bool          `json:"debug"`
}

// DefaultConfig returns sensible defaults. Zero width/height means "size the
// board to the terminal".
func DefaultConfig() Config {
	return Config{
		Width:          0,
		Height:         0,
		FrameRate:      150 * time.Millisecond,
		Coverage:       0.75,
		Seed:           0,
		MaxGenerations: 1000,
		Debug:          false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
