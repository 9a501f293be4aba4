package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/talkto/internal/directory"
	"github.com/jonathan/talkto/internal/reps"
	"github.com/jonathan/talkto/internal/types"
)

// IssuesResponse lists every issue category and the quick-select tiles.
type IssuesResponse struct {
	Popular    []types.IssueTile     `json:"popular"`
	Categories []types.IssueCategory `json:"categories"`
}

// MetroResponse is the metro a zip code resolves to; Metro is null when none does.
type MetroResponse struct {
	Zip   string          `json:"zip"`
	Metro *types.MetroRef `json:"metro"`
}

// handleIssues lists the issue categories.
func (s *Server) handleIssues(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, IssuesResponse{
		Popular:    directory.PopularIssues,
		Categories: s.directory.Categories(),
	})
}

// handleMetro resolves ?zip= to a metro.
func (s *Server) handleMetro(w http.ResponseWriter, r *http.Request) {
	zip, err := reps.ValidateZip(r.URL.Query().Get("zip"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	resp := MetroResponse{Zip: zip}
	if m := s.directory.MetroForZip(zip); m != nil {
		resp.Metro = &types.MetroRef{ID: m.ID, Name: m.Name}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleOrganizations recommends organizations for ?category=, localized by the optional ?zip=.
func (s *Server) handleOrganizations(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		err := &ErrValidation{Field: "category", Message: "category is required"}
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}

	zip := r.URL.Query().Get("zip")
	if strings.TrimSpace(zip) != "" {
		clean, err := reps.ValidateZip(zip)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
			return
		}
		zip = clean
	} else {
		zip = ""
	}

	rec, err := s.directory.Recommend(category, zip)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}
