package model

import "time"

// JournalEntry Запись журнала: что выпало и почему веса были такими
type JournalEntry struct {
	OutcomeID     string
	ResultNumber  int
	Weights       [10]float64
	HotNumbers    []int
	ColdNumbers   []int
	StreakType    Range
	CurrentStreak int
	Trap          TrapPattern
	CreatedAt     time.Time
}
