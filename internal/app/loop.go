package app

import (
	"context"
	"time"

	"satta_backend/internal/service"

	"go.uber.org/zap"
)

// untilNextTick Время до ближайшей границы интервала (начало минуты при интервале 1m)
func untilNextTick(now time.Time, interval time.Duration) time.Duration {
	return now.Truncate(interval).Add(interval).Sub(now)
}

// runLoop Выполняет цикл на каждой границе интервала до отмены контекста.
// Ошибка цикла логируется, следующий цикл идет по расписанию
func runLoop(ctx context.Context, serv service.RoundService, interval time.Duration, logger *zap.Logger) error {
	logger.Info("round loop started", zap.Duration("interval", interval))

	timer := time.NewTimer(untilNextTick(time.Now(), interval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("round loop stopped")
			return nil
		case <-timer.C:
		}

		runCycle(ctx, serv, logger)
		timer.Reset(untilNextTick(time.Now(), interval))
	}
}

func runCycle(ctx context.Context, serv service.RoundService, logger *zap.Logger) {
	report, err := serv.Generate(ctx)
	if err != nil {
		logger.Error("round failed", zap.Error(err))
		return
	}

	o := report.Outcome
	logger.Info("round result",
		zap.String("id", o.ID),
		zap.Int("number", o.Number),
		zap.String("type", string(o.Type)),
		zap.String("color", string(o.Color)),
		zap.String("group", string(o.Group)),
		zap.Int("history", report.Analysis.TotalResults),
		zap.Ints("hot", report.Analysis.HotNumbers),
		zap.Ints("cold", report.Analysis.ColdNumbers),
		zap.Int("streak", report.Tracker.CurrentStreak),
		zap.String("streak_type", string(report.Tracker.StreakType)),
		zap.Float64s("weights", report.Weights[:]),
	)
}
