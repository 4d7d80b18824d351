package repository

import (
	"context"

	"satta_backend/internal/model"
)

// ResultRepository История результатов (источник и приемник для цикла)
type ResultRepository interface {
	GetHistory(ctx context.Context) ([]model.ResultRecord, error)
	CreateResult(ctx context.Context, outcome *model.Outcome) error
}

// TrackerRepository Состояние трекера паттернов в памяти процесса
type TrackerRepository interface {
	// State Копия текущего состояния
	State() model.PatternState
	// Observe Учитывает одно новое число. history - результаты до него
	Observe(n int, history []int) model.PatternState
	// Rebuild Пересобирает состояние по всей истории
	Rebuild(numbers []int) model.PatternState
}

// JournalRepository Локальный журнал решений по каждому циклу
type JournalRepository interface {
	Append(ctx context.Context, entry *model.JournalEntry) error
	Recent(ctx context.Context, limit int) ([]model.JournalEntry, error)
	Close() error
}
