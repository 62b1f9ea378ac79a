package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"gatepost/internal/domain/transit"
)

type TransitRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewTransitRepository(pool *pgxpool.Pool, log *slog.Logger) *TransitRepository {
	return &TransitRepository{
		pool: pool,
		log:  log.With("component", "transit_repository"),
	}
}

func (r *TransitRepository) List(ctx context.Context) ([]transit.Record, error) {
	const query = `
		SELECT id, person_name, car_model, car_number, unit, person_type,
		       permit_giver, notes, entry_time, exit_time, date, created_at
		FROM transits
		ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list records", "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *TransitRepository) Get(ctx context.Context, id int64) (*transit.Record, error) {
	const query = `
		SELECT id, person_name, car_model, car_number, unit, person_type,
		       permit_giver, notes, entry_time, exit_time, date, created_at
		FROM transits
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	rec, err := r.scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transit.ErrNotFound
		}
		r.log.Error("failed to get record", "id", id, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *TransitRepository) Create(ctx context.Context, rec *transit.Record) (int64, error) {
	const query = `
		INSERT INTO transits (person_name, car_model, car_number, unit,
		                      person_type, permit_giver, notes, entry_time,
		                      exit_time, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		rec.PersonName, rec.CarModel, rec.CarNumber, rec.Unit,
		rec.PersonType, rec.PermitGiver, rec.Notes, rec.EntryTime,
		rec.ExitTime, rec.Date,
	).Scan(&rec.ID, &rec.CreatedAt)

	if err != nil {
		r.log.Error("failed to create record", "error", err)
		return 0, fmt.Errorf("create record: %w", err)
	}

	return rec.ID, nil
}

// SetExitTime stamps the exit time once. The WHERE clause keeps an already
// stamped record untouched even under concurrent callers.
func (r *TransitRepository) SetExitTime(ctx context.Context, id int64, exitTime time.Time) error {
	const query = `
		UPDATE transits
		SET exit_time = $1
		WHERE id = $2 AND exit_time IS NULL`

	result, err := r.pool.Exec(ctx, query, exitTime, id)
	if err != nil {
		r.log.Error("failed to set exit time", "id", id, "error", err)
		return fmt.Errorf("set exit time: %w", err)
	}

	if result.RowsAffected() == 0 {
		if _, err := r.Get(ctx, id); errors.Is(err, transit.ErrNotFound) {
			return transit.ErrNotFound
		}
		return transit.ErrExitAlreadySet
	}

	return nil
}

func (r *TransitRepository) scanRecords(rows pgx.Rows) ([]transit.Record, error) {
	var records []transit.Record

	for rows.Next() {
		rec, err := r.scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (r *TransitRepository) scanRecord(row interface {
	Scan(dest ...interface{}) error
}) (*transit.Record, error) {
	var rec transit.Record
	var entryTime, exitTime sql.NullTime

	err := row.Scan(
		&rec.ID, &rec.PersonName, &rec.CarModel, &rec.CarNumber,
		&rec.Unit, &rec.PersonType, &rec.PermitGiver, &rec.Notes,
		&entryTime, &exitTime, &rec.Date, &rec.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	if entryTime.Valid {
		rec.EntryTime = &entryTime.Time
	}
	if exitTime.Valid {
		rec.ExitTime = &exitTime.Time
	}

	return &rec, nil
}
