package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/talkto/internal/legislation"
)

// handlePublicTrends serves the public interest panel. It always answers 200;
// degraded upstreams are reflected in the response's source field.
func (s *Server) handlePublicTrends(w http.ResponseWriter, r *http.Request) {
	resp := s.trends.PublicTrends(r.Context())
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleTrending serves the legislative activity panel.
func (s *Server) handleTrending(w http.ResponseWriter, r *http.Request) {
	resp, err := s.activity.Trending(r.Context())
	if err != nil {
		if errors.Is(err, legislation.ErrMissingAPIKey) {
			log.Printf("[congress] %v", err)
			s.errorResponse(w, http.StatusInternalServerError, legislation.MsgMissingAPIKey)
			return
		}
		log.Printf("[congress] Error fetching from Congress API: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, legislation.MsgFetchFailed)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", int(s.activityMaxAge.Seconds())))
	s.jsonResponse(w, http.StatusOK, resp)
}
