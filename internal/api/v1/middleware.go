package v1

import "net/http"

// requireMedia wraps a handler and returns 503 if local media is not configured.
func (s *Server) requireMedia(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Media == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Local media not configured")
			return
		}
		next(w, r)
	}
}

// requireSettings wraps a handler and returns 503 if settings are not configured.
func (s *Server) requireSettings(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Settings == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Settings not configured")
			return
		}
		next(w, r)
	}
}
