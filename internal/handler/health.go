package handler

import "net/http"

// Health handles GET /health. Returns 200 as long as the process is up;
// it deliberately does not probe providers or the database.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
