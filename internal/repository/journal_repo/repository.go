package journal_repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"satta_backend/internal/model"
	"satta_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	table         = "round_journal"
	colID         = "id"
	colOutcomeID  = "outcome_id"
	colNumber     = "result_number"
	colWeights    = "weights_json"
	colHot        = "hot_json"
	colCold       = "cold_json"
	colStreakType = "streak_type"
	colStreak     = "current_streak"
	colTrap       = "trap"
	colCreatedAt  = "created_at"
)

const schema = `
CREATE TABLE IF NOT EXISTS round_journal (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	outcome_id     TEXT NOT NULL UNIQUE,
	result_number  INTEGER NOT NULL,
	weights_json   TEXT NOT NULL,
	hot_json       TEXT NOT NULL,
	cold_json      TEXT NOT NULL,
	streak_type    TEXT NOT NULL,
	current_streak INTEGER NOT NULL,
	trap           TEXT NOT NULL,
	created_at     TEXT NOT NULL
);
`

type repo struct {
	db *sql.DB
}

// NewJournalRepository Открывает sqlite-файл журнала и создает таблицу
func NewJournalRepository(path string) (repository.JournalRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Один writer: sqlite не любит конкурентные записи
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}
	return &repo{db: db}, nil
}

// Append - запись решения по одному циклу
func (r *repo) Append(ctx context.Context, entry *model.JournalEntry) error {
	weights, err := json.Marshal(entry.Weights)
	if err != nil {
		return err
	}
	hot, err := json.Marshal(nonNil(entry.HotNumbers))
	if err != nil {
		return err
	}
	cold, err := json.Marshal(nonNil(entry.ColdNumbers))
	if err != nil {
		return err
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := sq.Insert(table).
		Columns(colOutcomeID, colNumber, colWeights, colHot, colCold, colStreakType, colStreak, colTrap, colCreatedAt).
		Values(
			entry.OutcomeID,
			entry.ResultNumber,
			string(weights),
			string(hot),
			string(cold),
			string(entry.StreakType),
			entry.CurrentStreak,
			string(entry.Trap),
			createdAt.UTC().Format(time.RFC3339Nano),
		).
		PlaceholderFormat(sq.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("append journal entry: %w", err)
	}
	return nil
}

// Recent - последние limit записей, самые свежие первыми
func (r *repo) Recent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	query := sq.Select(colOutcomeID, colNumber, colWeights, colHot, colCold, colStreakType, colStreak, colTrap, colCreatedAt).
		From(table).
		OrderBy(colID + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Question)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	entries := make([]model.JournalEntry, 0, limit)
	for rows.Next() {
		var (
			e                       model.JournalEntry
			weights, hot, cold      string
			streakType, trap, stamp string
		)
		if err := rows.Scan(&e.OutcomeID, &e.ResultNumber, &weights, &hot, &cold, &streakType, &e.CurrentStreak, &trap, &stamp); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		if err := json.Unmarshal([]byte(weights), &e.Weights); err != nil {
			return nil, fmt.Errorf("decode weights: %w", err)
		}
		if err := json.Unmarshal([]byte(hot), &e.HotNumbers); err != nil {
			return nil, fmt.Errorf("decode hot numbers: %w", err)
		}
		if err := json.Unmarshal([]byte(cold), &e.ColdNumbers); err != nil {
			return nil, fmt.Errorf("decode cold numbers: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, stamp)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		e.StreakType = model.Range(streakType)
		e.Trap = model.TrapPattern(trap)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *repo) Close() error {
	return r.db.Close()
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
