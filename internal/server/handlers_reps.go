package server

import (
	"log"
	"net/http"
)

// handleRepresentatives looks up the representatives for ?zip=.
func (s *Server) handleRepresentatives(w http.ResponseWriter, r *http.Request) {
	zip := r.URL.Query().Get("zip")

	resp, err := s.reps.Lookup(r.Context(), zip)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[reps] lookup failed (%s): %v", RequestID(r.Context()), err)
		}
		s.errorResponse(w, status, PublicMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
