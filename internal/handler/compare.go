package handler

import (
	"net/http"

	"unihub/internal/compare"
	"unihub/internal/model"
	"unihub/internal/service"
)

// CompareHandler exposes the per-user comparison selection.
type CompareHandler struct {
	svc *service.CompareService
}

func NewCompareHandler(svc *service.CompareService) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// GET /v1/users/{user_id}/compare
func (h *CompareHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Resolve(r.Context(), userID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if records == nil {
		records = []model.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"records":  records,
		"capacity": compare.Capacity,
	})
}

// POST /v1/users/{user_id}/compare
func (h *CompareHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in struct {
		RecordID string `json:"record_id"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "invalid body")
		return
	}
	if in.RecordID == "" {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "record_id is required")
		return
	}

	size, err := h.svc.Add(r.Context(), userID(r), in.RecordID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"size":     size,
		"capacity": compare.Capacity,
	})
}

// DELETE /v1/users/{user_id}/compare
func (h *CompareHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context(), userID(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "E_INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
