package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"unihub/internal/compare"
	"unihub/internal/model"
	"unihub/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func decodeBody(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps the taxonomy of non-fatal browse/compare errors to
// status codes and stable error codes; everything unexpected is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var nf *model.NotFoundError
	switch {
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, "E_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrNotAnInteger):
		writeError(w, http.StatusUnprocessableEntity, "E_VALIDATION", "score must be a whole number")
	case errors.Is(err, compare.ErrDuplicate):
		writeError(w, http.StatusConflict, "E_COMPARE_DUPLICATE", "record already selected")
	case errors.Is(err, compare.ErrFull):
		writeError(w, http.StatusConflict, "E_COMPARE_FULL", "comparison set is full")
	default:
		writeError(w, http.StatusInternalServerError, "E_INTERNAL", err.Error())
	}
}
