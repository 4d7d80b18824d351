package config

import (
	"errors"
	"fmt"
)

// WeightRules Множители и пороги, которые применяются к весам цифр
type WeightRules struct {
	// Window Сколько последних результатов учитывать для горячих/холодных
	Window    int `yaml:"window"`
	HotCount  int `yaml:"hot_count"`
	ColdCount int `yaml:"cold_count"`

	HotFactor  float64 `yaml:"hot_factor"`
	ColdFactor float64 `yaml:"cold_factor"`

	// Доля группы 0/9 в истории: ниже low - бустим 0 и 9, выше high - гасим
	ZeroNineLow      float64 `yaml:"zero_nine_low"`
	ZeroNineHigh     float64 `yaml:"zero_nine_high"`
	ZeroNineBoost    float64 `yaml:"zero_nine_boost"`
	ZeroNineSuppress float64 `yaml:"zero_nine_suppress"`

	StreakThreshold int     `yaml:"streak_threshold"`
	StreakFactor    float64 `yaml:"streak_factor"`

	TrapSSBFactor float64 `yaml:"trap_ssb_factor"`
	TrapBBSFactor float64 `yaml:"trap_bbs_factor"`
}

// DefaultWeightRules Значения по умолчанию
func DefaultWeightRules() WeightRules {
	return WeightRules{
		Window:           100,
		HotCount:         3,
		ColdCount:        3,
		HotFactor:        0.7,
		ColdFactor:       1.5,
		ZeroNineLow:      0.10,
		ZeroNineHigh:     0.20,
		ZeroNineBoost:    1.8,
		ZeroNineSuppress: 0.5,
		StreakThreshold:  3,
		StreakFactor:     1.5,
		TrapSSBFactor:    0.3,
		TrapBBSFactor:    0.4,
	}
}

// Validate Все множители должны быть положительными, иначе распределение может выродиться
func (r WeightRules) Validate() error {
	if r.Window <= 0 {
		return errors.New("window must be positive")
	}
	if r.HotCount < 0 || r.ColdCount < 0 {
		return errors.New("hot_count and cold_count must not be negative")
	}
	if r.StreakThreshold <= 0 {
		return errors.New("streak_threshold must be positive")
	}
	if r.ZeroNineLow < 0 || r.ZeroNineHigh > 1 || r.ZeroNineLow > r.ZeroNineHigh {
		return fmt.Errorf("invalid zero/nine ratio bounds [%v, %v]", r.ZeroNineLow, r.ZeroNineHigh)
	}

	factors := map[string]float64{
		"hot_factor":         r.HotFactor,
		"cold_factor":        r.ColdFactor,
		"zero_nine_boost":    r.ZeroNineBoost,
		"zero_nine_suppress": r.ZeroNineSuppress,
		"streak_factor":      r.StreakFactor,
		"trap_ssb_factor":    r.TrapSSBFactor,
		"trap_bbs_factor":    r.TrapBBSFactor,
	}
	for name, v := range factors {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}
	return nil
}
