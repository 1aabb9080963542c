package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	Difficulty string `yaml:"difficulty" env:"DIFFICULTY" env-default:"impossible"`
	// SearchDepth overrides Difficulty when positive.
	SearchDepth int `yaml:"search-depth" env:"SEARCH_DEPTH" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the config file when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config %s: %w", path, err)
	}

	return config, nil
}

// GetSearchDepth - resolves the depth the bot searches to.
func (that *Game) GetSearchDepth() (int, error) {
	if that.SearchDepth > 0 {
		return that.SearchDepth, nil
	}

	difficulty, err := tictactoe.ParseDifficulty(that.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("invalid game config: %w", err)
	}

	return difficulty.Depth(), nil
}
