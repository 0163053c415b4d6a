package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"job-board/internal/database"
	"job-board/internal/domain/job"
	"job-board/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes raised when the search_vector column or its text
// search configuration has not been migrated.
const (
	pgUndefinedColumn = "42703"
	pgUndefinedObject = "42704"
)

type JobRepository interface {
	search.Store

	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	Create(ctx context.Context, p job.Posting) (job.Posting, error)
	Update(ctx context.Context, p job.Posting) (job.Posting, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Find(ctx context.Context, c search.Criteria, order []search.SortField, offset, limit int) ([]job.Posting, error) {
	if offset < 0 {
		offset = 0
	}

	a := &sqlArgs{}
	q := `SELECT ` + jobColumns + ` FROM job_postings ` + buildWhere(c, a) + ` ` + buildOrder(order)
	if limit > 0 {
		q += ` LIMIT ` + a.add(limit)
	}
	q += ` OFFSET ` + a.add(offset)

	rows, err := r.db.Query(ctx, q, a.args...)
	if err != nil {
		return nil, classify(c, err)
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(c, err)
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context, c search.Criteria) (int, error) {
	a := &sqlArgs{}
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM job_postings `+buildWhere(c, a), a.args...)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, classify(c, err)
	}
	return n, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM job_postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_postings
		 (id, title, description, location, salary, min_salary, max_salary, skills, tags, remote, type, is_active, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Title, p.Description, p.Location, p.Salary, p.MinSalary, p.MaxSalary,
		nonNil(p.Skills), nonNil(p.Tags), p.Remote, p.Type, p.IsActive, p.CreatedBy,
	)
	if err != nil {
		return job.Posting{}, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresJobRepository) Update(ctx context.Context, p job.Posting) (job.Posting, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE job_postings
		 SET title = $1, description = $2, location = $3, salary = $4, min_salary = $5, max_salary = $6,
		     skills = $7, tags = $8, remote = $9, type = $10, is_active = $11, updated_at = $12
		 WHERE id = $13`,
		p.Title, p.Description, p.Location, p.Salary, p.MinSalary, p.MaxSalary,
		nonNil(p.Skills), nonNil(p.Tags), p.Remote, p.Type, p.IsActive, time.Now().UTC(), p.ID,
	)
	if err != nil {
		return job.Posting{}, err
	}
	if n == 0 {
		return job.Posting{}, job.ErrNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PostgresJobRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	n, err := r.db.Exec(ctx, `UPDATE job_postings SET is_active = $1, updated_at = $2 WHERE id = $3`, active, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

// classify tags full-text failures caused by a missing search_vector so the
// executor can retry with substring matching.
func classify(c search.Criteria, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if c.Mode == search.TextFullText && errors.As(err, &pgErr) {
		if pgErr.Code == pgUndefinedColumn || pgErr.Code == pgUndefinedObject {
			return search.IndexUnavailable(err)
		}
	}
	return &search.StoreError{Kind: search.FailureGeneric, Err: err}
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.Salary, &p.MinSalary, &p.MaxSalary,
		&p.Skills, &p.Tags, &p.Remote, &p.Type, &p.IsActive,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
