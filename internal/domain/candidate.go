package domain

import (
	"context"
	"time"
)

// Candidate is a president/vice-president pair standing in a vote.
// swagger:model Candidate
type Candidate struct {
	ID                 string     `json:"id"`
	VoteNumber         int        `json:"vote_number"`
	PresidentName      string     `json:"president_name"`
	VicePresidentName  string     `json:"vice_president_name"`
	PresidentNIM       string     `json:"president_nim"`
	VicePresidentNIM   string     `json:"vice_president_nim"`
	PresidentPhoto     string     `json:"president_photo"`
	VicePresidentPhoto string     `json:"vice_president_photo"`
	Status             bool       `json:"status"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

// CandidateFilter narrows a candidate listing. Nil fields are unset.
type CandidateFilter struct {
	ID    *string
	Page  *int
	Limit *int
}

// CandidateListPage is one page of candidates. Total counts every row
// matching the filter, not only the rows on this page.
type CandidateListPage struct {
	Total      int
	Candidates []*Candidate
}

// CandidateRepository defines read access to candidate storage.
type CandidateRepository interface {
	// FindAll returns the page of candidates selected by filter along with
	// the total number of matching rows. The count and the page are read in
	// two separate round-trips, so under concurrent writes they may disagree.
	FindAll(ctx context.Context, filter CandidateFilter) (*CandidateListPage, error)
}
