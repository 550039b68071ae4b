package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"votesvc/internal/delivery/http/helpers"
	"votesvc/internal/usecase"
)

// ListCandidatesSuccessResponse is the success envelope for GET /candidates (200).
type ListCandidatesSuccessResponse struct {
	Status    bool                            `json:"status"`
	Message   string                          `json:"message"`
	ErrorCode string                          `json:"error_code"`
	Data      *usecase.ListCandidatesResponse `json:"data"`
}

type CandidateController struct {
	Logger         *slog.Logger
	ListCandidates usecase.ListCandidatesUseCase
}

func NewCandidateController(logger *slog.Logger, listCandidates usecase.ListCandidatesUseCase) *CandidateController {
	return &CandidateController{
		Logger:         logger,
		ListCandidates: listCandidates,
	}
}

// List godoc
// @Summary List candidates
// @Description Returns a page of candidates, optionally filtered by id. total counts every matching candidate; page and limit echo the values applied (defaults 1 and 10, limit capped at 100).
// @Tags candidates
// @Produce json
// @Param id query string false "Candidate ID (UUID)"
// @Param page query int false "1-based page number" minimum(1)
// @Param limit query int false "Page size" minimum(1)
// @Success 200 {object} controllers.ListCandidatesSuccessResponse "data contains candidates, total, page and limit"
// @Failure 400 {object} helpers.APIResponse "error_code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error_code: internal_error"
// @Router /candidates [get]
func (c *CandidateController) List(w http.ResponseWriter, r *http.Request) {
	q, errs := helpers.ParseCandidateListQuery(r)
	if len(errs) > 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(errs, "; "))
		return
	}
	c.Logger.DebugContext(r.Context(), "list candidates", "query", r.URL.RawQuery)

	resp, err := c.ListCandidates.Handle(r.Context(), usecase.ListCandidatesRequest{
		ID:    q.ID,
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed process data")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, "Successfully processed candidate", resp)
}
