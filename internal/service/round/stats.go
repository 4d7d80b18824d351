package round

import (
	"sort"

	"satta_backend/internal/config"
	"satta_backend/internal/model"
	servModel "satta_backend/internal/service/round/model"

	"gonum.org/v1/gonum/stat"
)

// Analyze Считает статистику по истории. Входной слайс не изменяется
func Analyze(numbers []int, rules config.WeightRules) model.Analysis {
	window := numbers
	if len(window) > rules.Window {
		window = window[len(window)-rules.Window:]
	}

	windowFreq := Frequency(window)
	hot, cold := HotCold(windowFreq, rules.HotCount, rules.ColdCount)

	return model.Analysis{
		TotalResults:    len(numbers),
		Frequency:       Frequency(numbers),
		WindowFrequency: windowFreq,
		GroupFrequency:  GroupFrequency(numbers),
		HotNumbers:      hot,
		ColdNumbers:     cold,
		Moments:         CalcMoments(numbers),
	}
}

// Frequency Количество выпадений каждой цифры
func Frequency(numbers []int) [10]int {
	var freq [10]int
	for _, n := range numbers {
		freq[n]++
	}
	return freq
}

// GroupFrequency Количество результатов по группам (0/9, 1-4, 5-9)
func GroupFrequency(numbers []int) map[model.Group]int {
	groups := map[model.Group]int{
		model.GroupZeroNine: 0,
		model.GroupOneFour:  0,
		model.GroupFiveNine: 0,
	}
	for _, n := range numbers {
		groups[servModel.Classify(n).Group]++
	}
	return groups
}

// HotCold Горячие и холодные цифры по частотам окна.
// В рейтинг попадают только выпавшие цифры, при равенстве меньшая цифра идет первой.
// Горячие забирают не больше половины выпавших цифр (с округлением вверх),
// холодные выбираются из оставшихся, так что множества не пересекаются
func HotCold(freq [10]int, hotCount, coldCount int) (hot, cold []int) {
	present := make([]int, 0, len(freq))
	for d, c := range freq {
		if c > 0 {
			present = append(present, d)
		}
	}

	byCountDesc := append([]int(nil), present...)
	sort.SliceStable(byCountDesc, func(i, j int) bool {
		return freq[byCountDesc[i]] > freq[byCountDesc[j]]
	})

	hotLimit := min(hotCount, (len(present)+1)/2)
	hot = append([]int{}, byCountDesc[:hotLimit]...)

	isHot := make(map[int]bool, len(hot))
	for _, d := range hot {
		isHot[d] = true
	}

	rest := make([]int, 0, len(present))
	for _, d := range present {
		if !isHot[d] {
			rest = append(rest, d)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return freq[rest[i]] < freq[rest[j]]
	})

	cold = append([]int{}, rest[:min(coldCount, len(rest))]...)
	return hot, cold
}

// CalcMoments Среднее, медиана, выборочное стандартное отклонение,
// скорректированные асимметрия и эксцесс. Если данных мало - 0
func CalcMoments(numbers []int) model.Moments {
	n := len(numbers)
	if n == 0 {
		return model.Moments{}
	}

	xs := make([]float64, n)
	for i, x := range numbers {
		xs[i] = float64(x)
	}

	m := model.Moments{
		Mean:   stat.Mean(xs, nil),
		Median: median(xs),
	}
	if n < 2 {
		return m
	}

	m.StdDev = stat.StdDev(xs, nil)
	// При нулевом разбросе gonum вернет NaN
	if m.StdDev == 0 || n < 3 {
		return m
	}

	m.Skew = stat.Skew(xs, nil)
	if n >= 4 {
		m.Kurtosis = stat.ExKurtosis(xs, nil)
	}
	return m
}

// median Для четного размера - среднее двух центральных.
// stat.Quantile с stat.Empirical вернул бы нижний из них
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
