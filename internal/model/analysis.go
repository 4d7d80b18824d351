package model

// Moments Описательная статистика по истории
type Moments struct {
	Mean     float64
	Median   float64
	StdDev   float64
	Skew     float64
	Kurtosis float64
}

// Analysis Снимок статистики по истории на момент цикла
type Analysis struct {
	TotalResults    int
	Frequency       [10]int // по всей истории
	WindowFrequency [10]int // по последним N результатам
	GroupFrequency  map[Group]int
	HotNumbers      []int
	ColdNumbers     []int
	Moments         Moments
}

// RoundReport Всё, что известно о цикле: анализ, состояние трекера и результат.
// Outcome == nil для предпросмотра без выборки
type RoundReport struct {
	Analysis Analysis
	Tracker  PatternState
	Weights  [10]float64
	Outcome  *Outcome
}
