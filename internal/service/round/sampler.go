package round

import (
	"math/rand/v2"
	"time"

	"satta_backend/internal/model"
	servModel "satta_backend/internal/service/round/model"

	"github.com/google/uuid"
)

// RandomSource Единственная точка, где в цикл попадает случайность
type RandomSource interface {
	Float64() float64 // [0, 1)
}

// NewSeededSource Воспроизводимый источник для фиксированного сида
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource Источник с сидом от текущего времени
func NewSource() RandomSource {
	return NewSeededSource(uint64(time.Now().UnixNano()))
}

// Sample Выбирает одну цифру по нормированным весам
func Sample(weights [10]float64, src RandomSource) int {
	var total float64
	for _, w := range weights {
		total += w
	}

	target := src.Float64() * total
	var cumulative float64
	last := 0
	for d, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		last = d
		if target < cumulative {
			return d
		}
	}
	// Сюда попадаем только из-за погрешности округления
	return last
}

// NewOutcome Собирает результат цикла для выпавшей цифры
func NewOutcome(n int, weights [10]float64, now time.Time) model.Outcome {
	t := servModel.Classify(n)
	return model.Outcome{
		ID:        uuid.NewString(),
		Number:    n,
		Type:      t.Range,
		Color:     t.Color,
		Group:     t.Group,
		Timestamp: now,
		Weights:   weights,
	}
}
