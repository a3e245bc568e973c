package meta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dominoes/game"

	"gopkg.in/yaml.v3"
)

type Config struct {
	MaxPip      int    `yaml:"max_pip"`
	Players     int    `yaml:"players"`
	HumanPlayer bool   `yaml:"human_player"`
	Debug       bool   `yaml:"debug"`
	MaxTurns    int    `yaml:"max_turns"`
	Seed        uint64 `yaml:"seed"` // 0 picks a time-based seed
}

func Default() Config {
	return Config{
		MaxPip:   MAX_PIP,
		Players:  PLAYERS,
		MaxTurns: MAX_TURNS,
	}
}

// Load reads the configuration at path. When the file does not exist the
// defaults are written there and returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings the game cannot be set up with. Nothing is
// replaced by a default.
func (c Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("%w: players must be positive, got %d", game.ErrInvalidConfig, c.Players)
	}
	if c.MaxPip < 0 {
		return fmt.Errorf("%w: max_pip must not be negative, got %d", game.ErrInvalidConfig, c.MaxPip)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("%w: max_turns must not be negative, got %d", game.ErrInvalidConfig, c.MaxTurns)
	}
	if size := game.SetSize(c.MaxPip); size < c.Players {
		return fmt.Errorf("%w: %d tiles cannot be dealt to %d players", game.ErrInvalidConfig, size, c.Players)
	}
	return nil
}

// HandSize is the number of tiles each player is dealt.
func (c Config) HandSize() int {
	return game.SetSize(c.MaxPip) / c.Players
}
