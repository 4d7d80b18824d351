package round

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"satta_backend/internal/model"

	"go.uber.org/zap"
)

const maxJournalLimit = 200

// Generate Выполняет один цикл.
// Чтение истории и запись результата идут в одной транзакции,
// трекер обновляется только после успешного сохранения
func (s *serv) Generate(ctx context.Context) (*model.RoundReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		report  *model.RoundReport
		history []int
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		history, err = s.loadHistory(txCtx)
		if err != nil {
			return err
		}

		report = s.compute(history)
		n := Sample(report.Weights, s.rng)
		outcome := NewOutcome(n, report.Weights, s.now())

		if err := s.resultRepo.CreateResult(txCtx, &outcome); err != nil {
			return fmt.Errorf("save result: %w", err)
		}
		report.Outcome = &outcome
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Состояние до обновления нужно журналу: именно по нему считались веса
	used := report.Tracker
	report.Tracker = s.trackerRepo.Observe(report.Outcome.Number, history)

	s.writeJournal(ctx, report, used)

	s.logger.Debug("round generated",
		zap.String("id", report.Outcome.ID),
		zap.Int("result", report.Outcome.Number),
		zap.Int("history", len(history)),
	)
	return report, nil
}

// Preview Те же анализ и веса, что получит следующий цикл, без выборки
func (s *serv) Preview(ctx context.Context) (*model.RoundReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	return s.compute(history), nil
}

func (s *serv) Tracker() model.PatternState {
	return s.trackerRepo.State()
}

// RebuildTracker Принудительная пересборка трекера по всей истории
func (s *serv) RebuildTracker(ctx context.Context) (model.PatternState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.resultRepo.GetHistory(ctx)
	if err != nil {
		return model.PatternState{}, fmt.Errorf("get history: %w", err)
	}
	history, err := HistoryNumbers(records)
	if err != nil {
		return model.PatternState{}, err
	}

	state := s.trackerRepo.Rebuild(history)
	s.logger.Info("tracker rebuilt", zap.Int("history", len(history)))
	return state, nil
}

func (s *serv) Journal(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	if s.journalRepo == nil {
		return nil, errors.New("journal is not configured")
	}
	if limit <= 0 || limit > maxJournalLimit {
		return nil, fmt.Errorf("%w: must be in 1..%d, got %d", model.ErrInvalidLimit, maxJournalLimit, limit)
	}
	return s.journalRepo.Recent(ctx, limit)
}

// loadHistory Читает и проверяет историю, при расхождении пересобирает трекер
func (s *serv) loadHistory(ctx context.Context) ([]int, error) {
	records, err := s.resultRepo.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	history, err := HistoryNumbers(records)
	if err != nil {
		return nil, err
	}

	s.syncTracker(history)
	return history, nil
}

// compute Чистая часть цикла: статистика и веса по истории и состоянию трекера
func (s *serv) compute(history []int) *model.RoundReport {
	state := s.trackerRepo.State()
	analysis := Analyze(history, s.rules)
	return &model.RoundReport{
		Analysis: analysis,
		Tracker:  state,
		Weights:  Synthesize(analysis, state, s.rules),
	}
}

// syncTracker Трекер обновляется по одному числу за цикл. Полная пересборка нужна,
// если он пуст при непустой истории (холодный старт), если число учтенных
// результатов не совпадает с длиной истории или последние числа расходятся с ее хвостом
func (s *serv) syncTracker(history []int) {
	state := s.trackerRepo.State()
	if trackerMatches(state, history) {
		return
	}

	s.logger.Warn("tracker is out of sync with history, rebuilding",
		zap.Int("observed", state.Observed),
		zap.Int("history", len(history)),
		zap.Ints("recent", state.RecentNumbers),
	)
	s.trackerRepo.Rebuild(history)
}

// trackerMatches Инкрементальный путь держит Observed == len(history),
// любое расхождение значит, что историю меняли в обход сервиса
func trackerMatches(state model.PatternState, history []int) bool {
	if state.Observed != len(history) {
		return false
	}

	recent := state.RecentNumbers
	return slices.Equal(recent, history[len(history)-len(recent):])
}

func (s *serv) writeJournal(ctx context.Context, report *model.RoundReport, used model.PatternState) {
	if s.journalRepo == nil {
		return
	}

	entry := &model.JournalEntry{
		OutcomeID:     report.Outcome.ID,
		ResultNumber:  report.Outcome.Number,
		Weights:       report.Weights,
		HotNumbers:    report.Analysis.HotNumbers,
		ColdNumbers:   report.Analysis.ColdNumbers,
		StreakType:    used.StreakType,
		CurrentStreak: used.CurrentStreak,
		Trap:          used.LastTrap,
		CreatedAt:     report.Outcome.Timestamp,
	}

	// Журнал вспомогательный: ошибка не отменяет уже сохраненный результат
	if err := s.journalRepo.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to write journal entry", zap.String("id", entry.OutcomeID), zap.Error(err))
	}
}
