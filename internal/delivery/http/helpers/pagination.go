package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// CandidateListQuery holds the query parameters of GET /candidates.
// Nil fields were absent from the query string.
type CandidateListQuery struct {
	ID    *string `query:"id"`
	Page  *int    `query:"page" validate:"omitempty,min=1,maxpage"`
	Limit *int    `query:"limit" validate:"omitempty,min=1"`
}

// ParseCandidateListQuery reads id, page and limit from the request query
// string. Defaults are not applied here. A non-UUID id, a non-integer page or
// limit, a value below 1, or a page above domain.MaxPage is reported as an
// error message.
func ParseCandidateListQuery(r *http.Request) (CandidateListQuery, []string) {
	var q CandidateListQuery
	var errs []string
	values := r.URL.Query()

	if s := strings.TrimSpace(values.Get("id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			errs = append(errs, "id must be a UUID")
		} else {
			canonical := id.String()
			q.ID = &canonical
		}
	}
	for _, p := range []struct {
		name string
		dest **int
	}{
		{"page", &q.Page},
		{"limit", &q.Limit},
	} {
		s := strings.TrimSpace(values.Get(p.name))
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s must be an integer", p.name))
			continue
		}
		*p.dest = &v
	}
	if len(errs) > 0 {
		return q, errs
	}
	return q, Validate(q)
}
