package converter

import (
	"math"
	"time"

	dto "satta_backend/internal/api/dto/round"
	"satta_backend/internal/model"
)

// TimestampLayout Формат времени в ответах
const TimestampLayout = "2006-01-02 15:04:05"

// ToOutcomeResponse Итог цикла для клиента. Серия показывается, если она длиннее одного результата
func ToOutcomeResponse(o model.Outcome, tracker model.PatternState) dto.OutcomeResponse {
	res := dto.OutcomeResponse{
		ID:           o.ID,
		ResultNumber: o.Number,
		Type:         string(o.Type),
		Color:        string(o.Color),
		Group:        string(o.Group),
		Timestamp:    o.Timestamp.Format(TimestampLayout),
		Weights:      roundWeights(o.Weights, 2),
		ZeroNine:     tracker.ZeroNineHistory,
	}
	if tracker.CurrentStreak > 1 {
		res.Streak = &dto.Streak{
			Type:   string(tracker.StreakType),
			Length: tracker.CurrentStreak,
		}
	}
	return res
}

func ToAnalysisResponse(report model.RoundReport) dto.AnalysisResponse {
	a := report.Analysis

	groups := make(map[string]int, len(a.GroupFrequency))
	for g, c := range a.GroupFrequency {
		groups[string(g)] = c
	}

	return dto.AnalysisResponse{
		TotalResults:    a.TotalResults,
		Frequency:       a.Frequency[:],
		WindowFrequency: a.WindowFrequency[:],
		GroupFrequency:  groups,
		HotNumbers:      nonNil(a.HotNumbers),
		ColdNumbers:     nonNil(a.ColdNumbers),
		Statistics: dto.Statistics{
			Mean:     a.Moments.Mean,
			Median:   a.Moments.Median,
			StdDev:   a.Moments.StdDev,
			Skew:     a.Moments.Skew,
			Kurtosis: a.Moments.Kurtosis,
		},
		Tracker:      ToTrackerResponse(report.Tracker),
		FinalWeights: roundWeights(report.Weights, 4),
	}
}

func ToTrackerResponse(s model.PatternState) dto.TrackerResponse {
	traps := make(map[string]int, len(s.TrapPatternCounts))
	for p, c := range s.TrapPatternCounts {
		traps[string(p)] = c
	}

	return dto.TrackerResponse{
		CurrentStreak:   s.CurrentStreak,
		StreakType:      string(s.StreakType),
		LastType:        string(s.LastType),
		RecentNumbers:   nonNil(s.RecentNumbers),
		ZeroNineHistory: nonNil(s.ZeroNineHistory),
		TrapPatterns:    traps,
		LastTrap:        string(s.LastTrap),
		Observed:        s.Observed,
	}
}

func ToJournalResponse(entries []model.JournalEntry) dto.JournalResponse {
	res := dto.JournalResponse{Entries: make([]dto.JournalEntry, len(entries))}
	for i, e := range entries {
		res.Entries[i] = dto.JournalEntry{
			OutcomeID:     e.OutcomeID,
			ResultNumber:  e.ResultNumber,
			Weights:       roundWeights(e.Weights, 4),
			HotNumbers:    nonNil(e.HotNumbers),
			ColdNumbers:   nonNil(e.ColdNumbers),
			StreakType:    string(e.StreakType),
			CurrentStreak: e.CurrentStreak,
			Trap:          string(e.Trap),
			CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return res
}

func roundWeights(w [10]float64, digits int) []float64 {
	pow := math.Pow(10, float64(digits))
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = math.Round(v*pow) / pow
	}
	return out
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
