package controllers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"votesvc/internal/delivery/http/helpers"
	"votesvc/internal/domain"
	"votesvc/internal/usecase"
)

// fakeListCandidates implements usecase.ListCandidatesUseCase for handler tests.
type fakeListCandidates struct {
	resp    *usecase.ListCandidatesResponse
	err     error
	calls   int
	lastReq usecase.ListCandidatesRequest
}

func (f *fakeListCandidates) Handle(ctx context.Context, req usecase.ListCandidatesRequest) (*usecase.ListCandidatesResponse, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const candidateUUID = "6f1c2b8e-4f0e-4d3a-9a59-0c4d1a8f2b11"

func sampleResponse() *usecase.ListCandidatesResponse {
	return &usecase.ListCandidatesResponse{
		Candidates: []*domain.Candidate{{
			ID:                 candidateUUID,
			VoteNumber:         1,
			PresidentName:      "Alice",
			VicePresidentName:  "Bob",
			PresidentNIM:       "123",
			VicePresidentNIM:   "456",
			PresidentPhoto:     "alice.jpg",
			VicePresidentPhoto: "bob.jpg",
			Status:             true,
			CreatedBy:          "admin",
			CreatedAt:          time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
		}},
		Total: 10,
		Page:  1,
		Limit: 10,
	}
}

func TestCandidateController_List(t *testing.T) {
	tests := []struct {
		name          string
		target        string
		fakeErr       error
		wantStatus    int
		wantCalls     int
		wantReq       usecase.ListCandidatesRequest
		wantErrorCode string
		wantMessage   string
	}{
		{
			name:        "success without query",
			target:      "/candidates",
			wantStatus:  http.StatusOK,
			wantCalls:   1,
			wantReq:     usecase.ListCandidatesRequest{},
			wantMessage: "Successfully processed candidate",
		},
		{
			name:       "success forwards parameters",
			target:     "/candidates?id=" + candidateUUID + "&page=2&limit=5",
			wantStatus: http.StatusOK,
			wantCalls:  1,
			wantReq: usecase.ListCandidatesRequest{
				ID:    strPtr(candidateUUID),
				Page:  intPtr(2),
				Limit: intPtr(5),
			},
			wantMessage: "Successfully processed candidate",
		},
		{
			name:          "invalid page",
			target:        "/candidates?page=abc",
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: helpers.ErrCodeBadRequest,
			wantMessage:   "page must be an integer",
		},
		{
			name:          "zero limit rejected",
			target:        "/candidates?limit=0",
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: helpers.ErrCodeBadRequest,
			wantMessage:   "limit must be at least 1",
		},
		{
			name:          "page whose offset would overflow",
			target:        fmt.Sprintf("/candidates?page=%d&limit=100", math.MaxInt),
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: helpers.ErrCodeBadRequest,
			wantMessage:   fmt.Sprintf("page must be at most %d", domain.MaxPage),
		},
		{
			name:          "invalid id",
			target:        "/candidates?id=not-a-uuid",
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: helpers.ErrCodeBadRequest,
			wantMessage:   "id must be a UUID",
		},
		{
			name:          "use case failure hides details",
			target:        "/candidates",
			fakeErr:       domain.NewUnknownError(sql.ErrConnDone),
			wantStatus:    http.StatusInternalServerError,
			wantCalls:     1,
			wantErrorCode: helpers.ErrCodeInternalError,
			wantMessage:   "failed process data",
		},
		{
			name:          "not found is still a server error",
			target:        "/candidates",
			fakeErr:       domain.NewNotFoundError(sql.ErrNoRows),
			wantStatus:    http.StatusInternalServerError,
			wantCalls:     1,
			wantErrorCode: helpers.ErrCodeInternalError,
			wantMessage:   "failed process data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeListCandidates{resp: sampleResponse(), err: tt.fakeErr}
			ctrl := NewCandidateController(discardLogger(), fake)
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			ctrl.List(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			require.Equal(t, tt.wantCalls, fake.calls)
			if tt.wantCalls > 0 {
				assert.Equal(t, tt.wantReq, fake.lastReq)
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus == http.StatusOK, body["status"])
			assert.Equal(t, tt.wantMessage, body["message"])
			if tt.wantErrorCode != "" {
				assert.Equal(t, tt.wantErrorCode, body["error_code"])
				assert.Nil(t, body["data"])
				assert.NotContains(t, rr.Body.String(), sql.ErrConnDone.Error())
			} else {
				assert.Equal(t, "", body["error_code"])
				assert.NotNil(t, body["data"])
			}
		})
	}
}

func TestCandidateController_List_Body(t *testing.T) {
	fake := &fakeListCandidates{resp: sampleResponse()}
	ctrl := NewCandidateController(discardLogger(), fake)
	rr := httptest.NewRecorder()

	ctrl.List(rr, httptest.NewRequest(http.MethodGet, "/candidates", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got ListCandidatesSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.True(t, got.Status)
	require.NotNil(t, got.Data)
	assert.Equal(t, 10, got.Data.Total)
	assert.Equal(t, 1, got.Data.Page)
	assert.Equal(t, 10, got.Data.Limit)
	require.Len(t, got.Data.Candidates, 1)
	assert.Equal(t, candidateUUID, got.Data.Candidates[0].ID)
	assert.Equal(t, "alice.jpg", got.Data.Candidates[0].PresidentPhoto)
	assert.Nil(t, got.Data.Candidates[0].UpdatedAt)
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
