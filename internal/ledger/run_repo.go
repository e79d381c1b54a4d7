package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shaiso/Epirun/internal/domain"
)

// RunRepo — репозиторий истории запусков.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo создаёт RunRepo поверх открытой БД.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// RunFilter — фильтр для List.
type RunFilter struct {
	Country string
	Status  domain.RunStatus
	Limit   int
}

// Create сохраняет новый run.
func (r *RunRepo) Create(ctx context.Context, run *domain.Run) error {
	query := `
		INSERT INTO runs (id, country, scenario, r0, phase, read_only, status,
		                  peak_infected, error, started_at, finished_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		run.ID.String(),
		run.Country,
		run.Scenario,
		run.R0,
		string(run.Phase),
		run.ReadOnly,
		string(run.Status),
		run.PeakInfected,
		run.Error,
		run.StartedAt,
		run.FinishedAt,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Update обновляет изменяемые поля run (статус, пик, ошибку, времена).
func (r *RunRepo) Update(ctx context.Context, run *domain.Run) error {
	query := `
		UPDATE runs
		SET status = ?, peak_infected = ?, error = ?, started_at = ?, finished_at = ?
		WHERE id = ?
	`
	res, err := r.db.ExecContext(ctx, query,
		string(run.Status),
		run.PeakInfected,
		run.Error,
		run.StartedAt,
		run.FinishedAt,
		run.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if affected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetByID возвращает run по ID.
func (r *RunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	query := selectRuns + " WHERE id = ?"
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id.String()))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	return run, err
}

// List возвращает runs по фильтру, новые первыми.
func (r *RunRepo) List(ctx context.Context, filter RunFilter) ([]domain.Run, error) {
	query := selectRuns
	var conds []string
	var args []any

	if filter.Country != "" {
		conds = append(conds, "country = ?")
		args = append(args, filter.Country)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(filter.Status))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

const selectRuns = `
	SELECT id, country, scenario, r0, phase, read_only, status,
	       peak_infected, error, started_at, finished_at, created_at
	FROM runs
`

// rowScanner — общий интерфейс *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var id, phase, status string
	var startedAt, finishedAt sql.NullTime

	err := row.Scan(
		&id,
		&run.Country,
		&run.Scenario,
		&run.R0,
		&phase,
		&run.ReadOnly,
		&status,
		&run.PeakInfected,
		&run.Error,
		&startedAt,
		&finishedAt,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan run: %w", err)
	}

	run.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse run id %q: %w", id, err)
	}
	run.Phase = domain.Phase(phase)
	run.Status = domain.RunStatus(status)
	if startedAt.Valid {
		run.StartedAt = &startedAt.Time
	}
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}

	return &run, nil
}
