package model

// TrapPattern Форма из трех последних результатов (B - большое, S - малое)
type TrapPattern string

const (
	TrapNone TrapPattern = ""
	TrapSSB  TrapPattern = "SSB"
	TrapBBS  TrapPattern = "BBS"
)

// PatternState Состояние трекера паттернов между циклами
type PatternState struct {
	CurrentStreak     int
	StreakType        Range
	LastType          Range
	RecentNumbers     []int // последние 4, самый свежий в конце
	ZeroNineHistory   []int // последние 20 чисел группы 0/9
	TrapPatternCounts map[TrapPattern]int
	LastTrap          TrapPattern // ловушка, найденная при последнем обновлении
	Observed          int         // сколько результатов учтено с последнего сброса
}

// Clone Глубокая копия, чтобы наружу не утекали внутренние слайсы и мапа
func (s PatternState) Clone() PatternState {
	out := s
	out.RecentNumbers = append([]int(nil), s.RecentNumbers...)
	out.ZeroNineHistory = append([]int(nil), s.ZeroNineHistory...)
	out.TrapPatternCounts = make(map[TrapPattern]int, len(s.TrapPatternCounts))
	for k, v := range s.TrapPatternCounts {
		out.TrapPatternCounts[k] = v
	}
	return out
}
