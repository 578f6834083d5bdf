package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/FACorreiaa/go-travel-intelligence/internal/types"
)

var _ Repository = (*PostgresRepository)(nil)

// Repository persists a compact summary of each generated plan so past trips
// can be listed without re-running the pipelines.
type Repository interface {
	SavePlanSummary(ctx context.Context, record types.PlanHistoryRecord) (uuid.UUID, error)
	ListPlanSummaries(ctx context.Context, city string, limit int) ([]types.PlanHistoryRecord, error)
}

// PGXPool is the slice of pgxpool.Pool the repository needs. Narrowed to an
// interface so tests can swap in pgxmock.
type PGXPool interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresRepository struct {
	logger *slog.Logger
	pgpool PGXPool
}

func NewPostgresRepository(pgxpool PGXPool, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgxpool,
	}
}

func (r *PostgresRepository) SavePlanSummary(ctx context.Context, record types.PlanHistoryRecord) (uuid.UUID, error) {
	tx, err := r.pgpool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO plan_history (
            city, start_date, end_date, travelers, total_attractions, total_events, moderate_trip_total, currency
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
    `
	var id uuid.UUID
	if err = tx.QueryRow(ctx, query,
		record.City, record.StartDate, record.EndDate, record.Travelers,
		record.TotalAttractions, record.TotalEvents, record.ModerateTripTotal, record.Currency,
	).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert plan summary: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) ListPlanSummaries(ctx context.Context, city string, limit int) ([]types.PlanHistoryRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
        SELECT id, city, start_date, end_date, travelers, total_attractions, total_events, moderate_trip_total, currency, created_at
        FROM plan_history
        WHERE city = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.pgpool.Query(ctx, query, city, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan history: %w", err)
	}
	defer rows.Close()

	var records []types.PlanHistoryRecord
	for rows.Next() {
		var rec types.PlanHistoryRecord
		if err := rows.Scan(
			&rec.ID, &rec.City, &rec.StartDate, &rec.EndDate, &rec.Travelers,
			&rec.TotalAttractions, &rec.TotalEvents, &rec.ModerateTripTotal, &rec.Currency, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan plan history row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating plan history rows: %w", err)
	}
	return records, nil
}
