package result_repo

import (
	"context"
	"fmt"
	"time"

	"satta_backend/internal/model"
	"satta_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "satta_results"
	colID        = "id"
	colNumber    = "result_number"
	colType      = "result_type"
	colColor     = "color"
	colGroup     = "result_group"
	colWeights   = "weights"
	colTimestamp = "created_at"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewResultRepository(dbc *pgxpool.Pool) repository.ResultRepository {
	return &repo{
		dbc: dbc,
	}
}

// GetHistory - получение всей истории результатов.
// Колонки читаются как nullable, чтобы битые записи дошли до проверки
func (r *repo) GetHistory(ctx context.Context) ([]model.ResultRecord, error) {
	sqlStr, args, err := historyQuery().ToSql()
	if err != nil {
		return nil, err
	}

	// Внутри транзакции менеджера берем ее, иначе пул
	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []model.ResultRecord
	for rows.Next() {
		var (
			id     string
			number *int
			ts     *time.Time
		)
		if err := rows.Scan(&id, &number, &ts); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		records = append(records, model.ResultRecord{
			ID:           id,
			ResultNumber: number,
			Timestamp:    ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return records, nil
}

// historyQuery Порядок детерминированный: по времени, при равном времени по id
func historyQuery() sq.SelectBuilder {
	return sq.Select(colID, colNumber, colTimestamp).
		From(table).
		OrderBy(colTimestamp, colID).
		PlaceholderFormat(sq.Dollar)
}

// CreateResult - сохранение результата цикла вместе с весами, по которым он выбран
func (r *repo) CreateResult(ctx context.Context, outcome *model.Outcome) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colNumber, colType, colColor, colGroup, colWeights, colTimestamp).
		Values(
			outcome.ID,
			outcome.Number,
			string(outcome.Type),
			string(outcome.Color),
			string(outcome.Group),
			outcome.Weights[:],
			outcome.Timestamp,
		).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)
	_, err = conn.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}

	return nil
}
