package round

import (
	"satta_backend/internal/config"
	"satta_backend/internal/model"
)

// Synthesize Собирает веса цифр из статистики и состояния трекера и нормирует их.
// Порядок правил важен только для читаемости: все множители перемножаются
func Synthesize(a model.Analysis, state model.PatternState, rules config.WeightRules) [10]float64 {
	var w [10]float64
	for i := range w {
		w[i] = 1.0
	}

	// Гасим горячие, поднимаем холодные
	for _, d := range a.HotNumbers {
		w[d] *= rules.HotFactor
	}
	for _, d := range a.ColdNumbers {
		w[d] *= rules.ColdFactor
	}

	// Доля группы 0/9. На пустой истории правило не применяется
	if a.TotalResults > 0 {
		ratio := float64(a.GroupFrequency[model.GroupZeroNine]) / float64(a.TotalResults)
		switch {
		case ratio < rules.ZeroNineLow:
			w[0] *= rules.ZeroNineBoost
			w[9] *= rules.ZeroNineBoost
		case ratio > rules.ZeroNineHigh:
			w[0] *= rules.ZeroNineSuppress
			w[9] *= rules.ZeroNineSuppress
		}
	}

	// Длинная серия - тянем в обратную сторону
	if state.CurrentStreak >= rules.StreakThreshold {
		switch state.StreakType {
		case model.RangeBig:
			scale(w[0:5], rules.StreakFactor)
		case model.RangeSmall:
			scale(w[5:10], rules.StreakFactor)
		}
	}

	switch state.LastTrap {
	case model.TrapSSB:
		w[0] *= rules.TrapSSBFactor
		w[9] *= rules.TrapSSBFactor
	case model.TrapBBS:
		scale(w[5:10], rules.TrapBBSFactor)
	}

	return normalize(w)
}

func scale(w []float64, factor float64) {
	for i := range w {
		w[i] *= factor
	}
}

func normalize(w [10]float64) [10]float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	for i := range w {
		w[i] /= total
	}
	return w
}
