package round

type OutcomeResponse struct {
	ID           string    `json:"id"`
	ResultNumber int       `json:"result_number"` // 0-9
	Type         string    `json:"type"`          // BIG / SMALL
	Color        string    `json:"color"`
	Group        string    `json:"group"`
	Timestamp    string    `json:"timestamp"`
	Weights      []float64 `json:"weights"` // Вероятности, округленные до 2 знаков
	Streak       *Streak   `json:"streak,omitempty"`
	ZeroNine     []int     `json:"zero_nine,omitempty"` // Последние выпадения 0 и 9
}

type Streak struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
}

type AnalysisResponse struct {
	TotalResults    int             `json:"total_results"`
	Frequency       []int           `json:"frequency"`
	WindowFrequency []int           `json:"window_frequency"`
	GroupFrequency  map[string]int  `json:"group_frequency"`
	HotNumbers      []int           `json:"hot_numbers"`
	ColdNumbers     []int           `json:"cold_numbers"`
	Statistics      Statistics      `json:"statistical_analysis"`
	Tracker         TrackerResponse `json:"tracker"`
	FinalWeights    []float64       `json:"final_weights"`
}

type Statistics struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"stdev"`
	Skew     float64 `json:"skew"`
	Kurtosis float64 `json:"kurtosis"`
}

type TrackerResponse struct {
	CurrentStreak   int            `json:"current_streak"`
	StreakType      string         `json:"streak_type,omitempty"`
	LastType        string         `json:"last_type,omitempty"`
	RecentNumbers   []int          `json:"last_numbers"`
	ZeroNineHistory []int          `json:"zero_nine_history"`
	TrapPatterns    map[string]int `json:"trap_patterns"`
	LastTrap        string         `json:"last_trap,omitempty"`
	Observed        int            `json:"observed"`
}

type JournalEntry struct {
	OutcomeID     string    `json:"outcome_id"`
	ResultNumber  int       `json:"result_number"`
	Weights       []float64 `json:"weights"`
	HotNumbers    []int     `json:"hot_numbers"`
	ColdNumbers   []int     `json:"cold_numbers"`
	StreakType    string    `json:"streak_type,omitempty"`
	CurrentStreak int       `json:"current_streak"`
	Trap          string    `json:"trap,omitempty"`
	CreatedAt     string    `json:"created_at"`
}

type JournalResponse struct {
	Entries []JournalEntry `json:"entries"`
}
