package postgres

import (
	"fmt"
	"strings"

	"votesvc/internal/domain"
)

const candidateColumns = `id, vote_number, president_name, vice_president_name, president_nim, vice_president_nim, president_photo, vice_president_photo, status, created_by, created_at, updated_at`

// predicate is one "column op $n" condition. column and op come from code,
// never from the request; only value is bound.
type predicate struct {
	column string
	op     string
	value  any
}

// candidateQuery renders the data and count statements of a candidate
// listing from a single predicate list so both always see the same rows.
type candidateQuery struct {
	predicates []predicate
}

func newCandidateQuery(filter domain.CandidateFilter) *candidateQuery {
	q := &candidateQuery{}
	if filter.ID != nil {
		q.where("id", "=", *filter.ID)
	}
	return q
}

func (q *candidateQuery) where(column, op string, value any) {
	q.predicates = append(q.predicates, predicate{column: column, op: op, value: value})
}

// whereClause renders the predicates with placeholders starting at $1.
// It returns an empty clause when there are no predicates.
func (q *candidateQuery) whereClause() (string, []any) {
	var b strings.Builder
	args := make([]any, 0, len(q.predicates)+2)
	for i, p := range q.predicates {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, p.value)
		fmt.Fprintf(&b, "%s %s $%d", p.column, p.op, len(args))
	}
	return b.String(), args
}

func (q *candidateQuery) countSQL() (string, []any) {
	clause, args := q.whereClause()
	return "SELECT COUNT(*) FROM candidates" + clause, args
}

func (q *candidateQuery) selectSQL(page domain.Pagination) (string, []any) {
	clause, args := q.whereClause()
	args = append(args, page.Limit, page.Offset())
	query := fmt.Sprintf("SELECT %s FROM candidates%s ORDER BY vote_number, id LIMIT $%d OFFSET $%d",
		candidateColumns, clause, len(args)-1, len(args))
	return query, args
}
