package postgres

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"votesvc/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// candidateRow mirrors one row of the candidates projection.
type candidateRow struct {
	ID                 uuid.UUID
	VoteNumber         int
	PresidentName      string
	VicePresidentName  string
	PresidentNIM       string
	VicePresidentNIM   string
	PresidentPhoto     string
	VicePresidentPhoto string
	Status             bool
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          sql.NullTime
}

// scan reads the columns in candidateColumns order.
func (c *candidateRow) scan(s rowScanner) error {
	return s.Scan(
		&c.ID, &c.VoteNumber, &c.PresidentName, &c.VicePresidentName,
		&c.PresidentNIM, &c.VicePresidentNIM, &c.PresidentPhoto, &c.VicePresidentPhoto,
		&c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (c *candidateRow) toDomain() *domain.Candidate {
	out := &domain.Candidate{
		ID:                 c.ID.String(),
		VoteNumber:         c.VoteNumber,
		PresidentName:      c.PresidentName,
		VicePresidentName:  c.VicePresidentName,
		PresidentNIM:       c.PresidentNIM,
		VicePresidentNIM:   c.VicePresidentNIM,
		PresidentPhoto:     c.PresidentPhoto,
		VicePresidentPhoto: c.VicePresidentPhoto,
		Status:             c.Status,
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt,
	}
	if c.UpdatedAt.Valid {
		out.UpdatedAt = &c.UpdatedAt.Time
	}
	return out
}
