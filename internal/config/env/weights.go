package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"satta_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type weightsConfig struct {
	rules config.WeightRules
}

type weightsFile struct {
	Weights config.WeightRules `yaml:"weights"`
}

// NewWeightsConfigFromYAML Читает секцию weights из yaml-файла.
// Нет файла - берем значения по умолчанию. Незаданные поля тоже остаются по умолчанию
func NewWeightsConfigFromYAML(path string) (config.WeightsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &weightsConfig{rules: config.DefaultWeightRules()}, nil
		}
		return nil, fmt.Errorf("read weights config: %w", err)
	}

	file := weightsFile{Weights: config.DefaultWeightRules()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse weights config: %w", err)
	}

	rules := file.Weights

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights config: %w", err)
	}

	return &weightsConfig{rules: rules}, nil
}

func (cfg *weightsConfig) Rules() config.WeightRules {
	return cfg.rules
}
