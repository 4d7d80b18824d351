package round

import (
	"math/rand/v2"
	"testing"

	"satta_backend/internal/config"
	"satta_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyTracker() model.PatternState {
	return model.PatternState{TrapPatternCounts: map[model.TrapPattern]int{}}
}

func sum(w [10]float64) float64 {
	var s float64
	for _, v := range w {
		s += v
	}
	return s
}

func TestSynthesize_EmptyHistoryIsUniform(t *testing.T) {
	rules := config.DefaultWeightRules()
	w := Synthesize(Analyze(nil, rules), emptyTracker(), rules)

	for d, p := range w {
		assert.InDelta(t, 0.1, p, 1e-12, "digit %d", d)
	}
}

func TestSynthesize_HotColdAndGroupRatio(t *testing.T) {
	rules := config.DefaultWeightRules()
	// 0/9 в истории нет совсем -> буст 0 и 9
	a := Analyze([]int{1, 1, 1, 2, 2, 3}, rules)
	w := Synthesize(a, emptyTracker(), rules)

	// hot = [1, 2], cold = [3]
	raw := [10]float64{1.8, 0.7, 0.7, 1.5, 1, 1, 1, 1, 1, 1.8}
	total := sum(raw)
	for d := range w {
		assert.InDelta(t, raw[d]/total, w[d], 1e-12, "digit %d", d)
	}
}

func TestSynthesize_ZeroNineSuppressed(t *testing.T) {
	rules := config.DefaultWeightRules()
	rules.HotCount, rules.ColdCount = 0, 0

	// 3 из 5 в группе 0/9 -> 0.6 > 0.2
	a := Analyze([]int{0, 9, 9, 4, 5}, rules)
	w := Synthesize(a, emptyTracker(), rules)

	raw := [10]float64{0.5, 1, 1, 1, 1, 1, 1, 1, 1, 0.5}
	total := sum(raw)
	assert.InDelta(t, raw[0]/total, w[0], 1e-12)
	assert.InDelta(t, raw[9]/total, w[9], 1e-12)
	assert.InDelta(t, 1/total, w[4], 1e-12)
}

func TestSynthesize_ZeroNineRatioBoundsAreInclusive(t *testing.T) {
	rules := config.DefaultWeightRules()
	rules.HotCount, rules.ColdCount = 0, 0

	// ровно 10% и ровно 20% - без корректировки
	for _, numbers := range [][]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 1},
		{0, 9, 1, 2, 3, 4, 5, 6, 7, 8},
	} {
		w := Synthesize(Analyze(numbers, rules), emptyTracker(), rules)
		assert.InDelta(t, 0.1, w[0], 1e-12)
		assert.InDelta(t, 0.1, w[9], 1e-12)
	}
}

func TestSynthesize_StreakFavorsReversal(t *testing.T) {
	rules := config.DefaultWeightRules()
	a := model.Analysis{}

	t.Run("big streak boosts small digits", func(t *testing.T) {
		st := emptyTracker()
		st.CurrentStreak, st.StreakType = 3, model.RangeBig

		w := Synthesize(a, st, rules)
		total := 5*1.5 + 5
		assert.InDelta(t, 1.5/total, w[2], 1e-12)
		assert.InDelta(t, 1/total, w[7], 1e-12)
	})

	t.Run("small streak boosts big digits", func(t *testing.T) {
		st := emptyTracker()
		st.CurrentStreak, st.StreakType = 4, model.RangeSmall

		w := Synthesize(a, st, rules)
		assert.Greater(t, w[5], w[4])
	})

	t.Run("short streak ignored", func(t *testing.T) {
		st := emptyTracker()
		st.CurrentStreak, st.StreakType = 2, model.RangeBig

		w := Synthesize(a, st, rules)
		assert.InDelta(t, w[2], w[7], 1e-12)
	})
}

func TestSynthesize_Traps(t *testing.T) {
	rules := config.DefaultWeightRules()
	a := model.Analysis{}

	st := emptyTracker()
	st.LastTrap = model.TrapSSB
	w := Synthesize(a, st, rules)
	total := 8 + 2*0.3
	assert.InDelta(t, 0.3/total, w[0], 1e-12)
	assert.InDelta(t, 0.3/total, w[9], 1e-12)
	assert.InDelta(t, 1/total, w[5], 1e-12)

	st.LastTrap = model.TrapBBS
	w = Synthesize(a, st, rules)
	total = 5 + 5*0.4
	assert.InDelta(t, 1/total, w[0], 1e-12)
	assert.InDelta(t, 0.4/total, w[9], 1e-12)
}

func TestSynthesize_EffectsCompound(t *testing.T) {
	rules := config.DefaultWeightRules()
	a := model.Analysis{HotNumbers: []int{9}}

	st := emptyTracker()
	st.CurrentStreak, st.StreakType = 5, model.RangeSmall
	st.LastTrap = model.TrapBBS

	w := Synthesize(a, st, rules)
	raw := [10]float64{1, 1, 1, 1, 1, 0.6, 0.6, 0.6, 0.6, 0.7 * 0.6}
	total := sum(raw)
	assert.InDelta(t, raw[9]/total, w[9], 1e-12)
	assert.InDelta(t, raw[5]/total, w[5], 1e-12)
}

func TestSynthesize_AlwaysProbabilityDistribution(t *testing.T) {
	rules := config.DefaultWeightRules()
	rng := rand.New(rand.NewPCG(7, 11))
	traps := []model.TrapPattern{model.TrapNone, model.TrapSSB, model.TrapBBS}
	ranges := []model.Range{model.RangeNone, model.RangeBig, model.RangeSmall}

	for i := 0; i < 200; i++ {
		numbers := make([]int, rng.IntN(150))
		for j := range numbers {
			numbers[j] = rng.IntN(10)
		}

		st := emptyTracker()
		st.StreakType = ranges[rng.IntN(len(ranges))]
		if st.StreakType != model.RangeNone {
			st.CurrentStreak = 1 + rng.IntN(6)
		}
		st.LastTrap = traps[rng.IntN(len(traps))]

		w := Synthesize(Analyze(numbers, rules), st, rules)
		require.InDelta(t, 1.0, sum(w), 1e-9)
		for d, p := range w {
			require.Greater(t, p, 0.0, "digit %d", d)
		}
	}
}

func TestPipeline_SkewedHistory(t *testing.T) {
	rules := config.DefaultWeightRules()
	history := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 9}

	a := Analyze(history, rules)
	assert.Equal(t, []int{1}, a.HotNumbers)
	assert.Equal(t, []int{9}, a.ColdNumbers)

	w := Synthesize(a, emptyTracker(), rules)
	assert.Less(t, w[1], 0.1)
	assert.Greater(t, w[9], 0.1)

	first := Sample(w, NewSeededSource(2024))
	second := Sample(w, NewSeededSource(2024))
	assert.Equal(t, first, second)
}
