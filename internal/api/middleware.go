package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// withAuth gates a handler behind the configured bearer token. With no
// token configured the surface is open, which suits a purely local UI.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.AuthDisabled() {
			next(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		if header == "" {
			s.denyAuth(w, r, "missing authorization header")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			s.denyAuth(w, r, "invalid authorization format")
			return
		}
		if token != s.cfg.BearerToken {
			s.denyAuth(w, r, "invalid token")
			return
		}

		next(w, r)
	}
}

func (s *Server) denyAuth(w http.ResponseWriter, r *http.Request, reason string) {
	s.logger.Warn("request rejected", "reason", reason, "remote_addr", r.RemoteAddr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(ErrorResponse{Error: reason})
}
