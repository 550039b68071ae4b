package usecase

import (
	"context"

	"votesvc/internal/domain"
)

// ListCandidatesRequest is the inbound listing request. Nil fields were not
// supplied by the client.
type ListCandidatesRequest struct {
	ID    *string
	Page  *int
	Limit *int
}

// ListCandidatesResponse is one page of candidates with the pagination that
// was actually applied.
// swagger:model ListCandidatesResponse
type ListCandidatesResponse struct {
	Candidates []*domain.Candidate `json:"candidates"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}

// ListCandidatesUseCase lists candidates.
type ListCandidatesUseCase interface {
	Handle(ctx context.Context, req ListCandidatesRequest) (*ListCandidatesResponse, error)
}

type listCandidatesUseCase struct {
	candidateRepo domain.CandidateRepository
}

func NewListCandidatesUseCase(candidateRepo domain.CandidateRepository) ListCandidatesUseCase {
	return &listCandidatesUseCase{candidateRepo: candidateRepo}
}

// Handle resolves pagination once, queries the repository and echoes the
// resolved page and limit. Repository errors are returned unchanged.
func (uc *listCandidatesUseCase) Handle(ctx context.Context, req ListCandidatesRequest) (*ListCandidatesResponse, error) {
	p := domain.ResolvePagination(req.Page, req.Limit)

	page, err := uc.candidateRepo.FindAll(ctx, domain.CandidateFilter{
		ID:    req.ID,
		Page:  &p.Page,
		Limit: &p.Limit,
	})
	if err != nil {
		return nil, err
	}

	candidates := page.Candidates
	if candidates == nil {
		candidates = []*domain.Candidate{}
	}
	return &ListCandidatesResponse{
		Candidates: candidates,
		Total:      page.Total,
		Page:       p.Page,
		Limit:      p.Limit,
	}, nil
}
