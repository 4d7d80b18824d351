package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// WeightsConfig Правила смещения весов, читаются из config.yaml
type WeightsConfig interface {
	Rules() WeightRules
}

type RoundConfig interface {
	CycleInterval() time.Duration
	// Seed Фиксированный сид генератора. false - сид не задан
	Seed() (uint64, bool)
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JournalConfig interface {
	Path() string
}

type AdminConfig interface {
	TokenSecretKey() []byte
	TokenDuration() time.Duration
}
