package api

import (
	"encoding/json"
	"mime"
	"net/http"
)

// Canonical envelopes shared by every public endpoint:
//   error:   {"error":true,"message":...}        default 400
//   success: {"success":true,"message":...,...}  200

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"error": true, "message": message})
}

func successResponse(w http.ResponseWriter, message string, extra map[string]any) {
	payload := map[string]any{"success": true, "message": message}
	for k, v := range extra {
		payload[k] = v
	}
	respondJSON(w, http.StatusOK, payload)
}

// decodeJSON enforces a JSON content type and decodes the body into dst.
// It writes the error envelope itself and reports whether to continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "application/json" {
		errorResponse(w, http.StatusBadRequest, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
