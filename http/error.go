package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/docnav"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	docnav.EINVALID:  http.StatusBadRequest,
	docnav.ENOTFOUND: http.StatusNotFound,
	docnav.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details hidden from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := docnav.ErrorCode(err), docnav.ErrorMessage(err)
	if code == docnav.EINTERNAL {
		s.log.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, ErrorStatusCode(code), map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
