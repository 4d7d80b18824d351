package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"satta_backend/internal/config"
)

const (
	cycleIntervalEnvName = "CYCLE_INTERVAL"
	rngSeedEnvName       = "RNG_SEED"

	// Исходный цикл выдавал результат раз в минуту
	defaultCycleInterval = time.Minute
)

type roundConfig struct {
	cycleInterval time.Duration
	seed          uint64
	hasSeed       bool
}

func NewRoundConfig() (config.RoundConfig, error) {
	cfg := &roundConfig{cycleInterval: defaultCycleInterval}

	if raw := os.Getenv(cycleIntervalEnvName); len(raw) != 0 {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid cycle interval: %w", err)
		}
		if interval <= 0 {
			return nil, fmt.Errorf("cycle interval must be positive, got %s", interval)
		}
		cfg.cycleInterval = interval
	}

	if raw := os.Getenv(rngSeedEnvName); len(raw) != 0 {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rng seed: %w", err)
		}
		cfg.seed = seed
		cfg.hasSeed = true
	}

	return cfg, nil
}

func (cfg *roundConfig) CycleInterval() time.Duration {
	return cfg.cycleInterval
}

func (cfg *roundConfig) Seed() (uint64, bool) {
	return cfg.seed, cfg.hasSeed
}
