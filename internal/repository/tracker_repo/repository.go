package tracker_repo

import (
	"sync"

	"satta_backend/internal/model"
	servModel "satta_backend/internal/service/round/model"
)

const (
	// recentCapacity Сколько последних чисел держим для отображения и сверки с историей
	recentCapacity = 4
	// zeroNineCapacity Сколько последних чисел группы 0/9 держим
	zeroNineCapacity = 20
)

// Трекер паттернов: серии, последние числа, ловушки.
// Все поля меняются одной критической секцией
type TrackerRepo struct {
	mtx   sync.RWMutex
	state model.PatternState
}

// NewTrackerRepository Пустой трекер на старте процесса
func NewTrackerRepository() *TrackerRepo {
	return &TrackerRepo{
		state: emptyState(),
	}
}

func emptyState() model.PatternState {
	return model.PatternState{
		RecentNumbers:     make([]int, 0, recentCapacity),
		ZeroNineHistory:   make([]int, 0, zeroNineCapacity),
		TrapPatternCounts: make(map[model.TrapPattern]int),
	}
}

// State Возвращает копию состояния
func (r *TrackerRepo) State() model.PatternState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state.Clone()
}

// Observe Учитывает новое число n. history - последовательность до n,
// из нее нужны только два последних числа для поиска ловушки
func (r *TrackerRepo) Observe(n int, history []int) model.PatternState {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tail := history
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}
	window := append(append(make([]int, 0, 3), tail...), n)

	fold(&r.state, n, window)
	return r.state.Clone()
}

// Rebuild Пересобирает состояние с нуля по всей истории.
// Счетчики ловушек не уменьшаются: берем максимум из текущего и пересчитанного
func (r *TrackerRepo) Rebuild(numbers []int) model.PatternState {
	rebuilt := emptyState()
	for i, n := range numbers {
		fold(&rebuilt, n, numbers[max(0, i-2):i+1])
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for pattern, count := range r.state.TrapPatternCounts {
		if count > rebuilt.TrapPatternCounts[pattern] {
			rebuilt.TrapPatternCounts[pattern] = count
		}
	}
	r.state = rebuilt
	return r.state.Clone()
}

// fold Одно обновление состояния. window - последние числа, заканчивающиеся на n
func fold(s *model.PatternState, n int, window []int) {
	currentType := servModel.Classify(n).Range

	// Продолжаем серию или начинаем новую
	if currentType == s.LastType {
		s.CurrentStreak++
	} else {
		s.CurrentStreak = 1
		s.StreakType = currentType
	}
	s.LastType = currentType

	s.RecentNumbers = pushBounded(s.RecentNumbers, n, recentCapacity)
	if servModel.Classify(n).Group == model.GroupZeroNine {
		s.ZeroNineHistory = pushBounded(s.ZeroNineHistory, n, zeroNineCapacity)
	}

	s.LastTrap = model.TrapNone
	if found, pattern := servModel.DetectTrap(window); found {
		s.TrapPatternCounts[pattern]++
		s.LastTrap = pattern
	}
	s.Observed++
}

// pushBounded Добавляет в конец, самый старый элемент вытесняется
func pushBounded(s []int, n, capacity int) []int {
	s = append(s, n)
	if len(s) > capacity {
		s = s[len(s)-capacity:]
	}
	return s
}
