package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"votesvc/internal/domain"
)

type candidateRepository struct {
	DB *sql.DB
}

// NewCandidateRepository returns a domain.CandidateRepository implemented with Postgres.
func NewCandidateRepository(db *sql.DB) domain.CandidateRepository {
	return &candidateRepository{DB: db}
}

// FindAll runs the count statement and then the data statement on the pool.
// They are not wrapped in a transaction, so Total may be stale relative to
// Candidates when rows are written in between.
func (r *candidateRepository) FindAll(ctx context.Context, filter domain.CandidateFilter) (*domain.CandidateListPage, error) {
	page := domain.ResolvePagination(filter.Page, filter.Limit)
	q := newCandidateQuery(filter)

	countQuery, countArgs := q.countSQL()
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, classifyError(err)
	}

	selectQuery, selectArgs := q.selectSQL(page)
	rows, err := r.DB.QueryContext(ctx, selectQuery, selectArgs...)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	candidates := make([]*domain.Candidate, 0, page.Limit)
	for rows.Next() {
		var row candidateRow
		if err := row.scan(rows); err != nil {
			return nil, classifyError(err)
		}
		candidates = append(candidates, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return &domain.CandidateListPage{Total: total, Candidates: candidates}, nil
}

// classifyError maps a store failure to a domain.CandidateError.
// sql.ErrNoRows is NotFound; everything else is Unknown.
func classifyError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(err)
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		return domain.NewUnknownError(fmt.Errorf("postgres %s (%s): %w", perr.Code, perr.Code.Name(), err))
	}
	return domain.NewUnknownError(err)
}
