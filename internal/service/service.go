package service

import (
	"context"

	"satta_backend/internal/model"
)

type RoundService interface {
	// Generate Один цикл: история -> анализ -> веса -> выборка -> сохранение -> трекер
	Generate(ctx context.Context) (*model.RoundReport, error)
	// Preview Анализ и веса следующего цикла без выборки и сохранения
	Preview(ctx context.Context) (*model.RoundReport, error)
	Tracker() model.PatternState
	// RebuildTracker Полная пересборка трекера по истории
	RebuildTracker(ctx context.Context) (model.PatternState, error)
	Journal(ctx context.Context, limit int) ([]model.JournalEntry, error)
}
