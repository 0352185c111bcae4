package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/opticode/backend/internal/services"
)

type leadRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	School  string `json:"school"`
	Address string `json:"address"`
}

// CaptureLead handles POST /api/lead. Phone must be at least 7 characters
// after trimming; school and address are optional.
func (a *API) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fields := map[string]string{"name": req.Name, "phone": req.Phone}
	if missing := missingFields(fields, []string{"name", "phone"}); len(missing) > 0 {
		errorResponse(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}
	if len(strings.TrimSpace(req.Phone)) < 7 {
		errorResponse(w, http.StatusBadRequest, "Invalid phone number")
		return
	}

	lead, err := services.CaptureLead(a.DB, req.Name, req.Phone, req.School, req.Address)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to capture lead")
		return
	}
	successResponse(w, "Lead captured successfully", map[string]any{
		"lead_id": lead.ID,
	})
}

// ListLeads handles GET /api/leads with offset/limit pagination.
func (a *API) ListLeads(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	leads, total, err := services.ListLeads(a.DB, limit, offset)
	if err != nil {
		errorResponse(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}
	successResponse(w, "Success", map[string]any{
		"leads":  leads,
		"total":  total,
		"limit":  services.ClampLimit(limit),
		"offset": offset,
	})
}

// pageParams reads limit/offset query params; clamping happens in services.
func pageParams(r *http.Request) (limit, offset int) {
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}
