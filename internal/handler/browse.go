package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"unihub/internal/service"
)

// BrowseHandler exposes one user's filter/page session to the transport
// layer. The user id is an opaque path segment — whatever the chat platform
// uses to identify the sender.
type BrowseHandler struct {
	svc *service.BrowseService
}

func NewBrowseHandler(svc *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{svc: svc}
}

func userID(r *http.Request) string {
	return chi.URLParam(r, "user_id")
}

// GET /v1/users/{user_id}/view
func (h *BrowseHandler) View(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)(h.svc.View(r.Context(), userID(r)))
}

// POST /v1/users/{user_id}/filters/city
func (h *BrowseHandler) SelectCity(w http.ResponseWriter, r *http.Request) {
	var in struct {
		City string `json:"city"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "invalid body")
		return
	}
	if in.City == "" {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "city is required")
		return
	}
	h.respondView(w)(h.svc.SelectCity(r.Context(), userID(r), in.City))
}

// POST /v1/users/{user_id}/filters/specialty
func (h *BrowseHandler) SelectSpecialty(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Specialty string `json:"specialty"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "invalid body")
		return
	}
	if in.Specialty == "" {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "specialty is required")
		return
	}
	h.respondView(w)(h.svc.SelectSpecialty(r.Context(), userID(r), in.Specialty))
}

// POST /v1/users/{user_id}/filters/score
// Enters score-entry mode; the score itself arrives via the input endpoint.
func (h *BrowseHandler) RequestScore(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RequestScore(r.Context(), userID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mode": "awaiting_score"})
}

// POST /v1/users/{user_id}/filters/reset
func (h *BrowseHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)(h.svc.Reset(r.Context(), userID(r)))
}

// POST /v1/users/{user_id}/page
func (h *BrowseHandler) GotoPage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Page int `json:"page"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "invalid body")
		return
	}
	h.respondView(w)(h.svc.GotoPage(r.Context(), userID(r), in.Page))
}

// POST /v1/users/{user_id}/page/next
func (h *BrowseHandler) NextPage(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)(h.svc.NextPage(r.Context(), userID(r)))
}

// POST /v1/users/{user_id}/page/prev
func (h *BrowseHandler) PrevPage(w http.ResponseWriter, r *http.Request) {
	h.respondView(w)(h.svc.PrevPage(r.Context(), userID(r)))
}

// POST /v1/users/{user_id}/input
// One free-text message from the user, interpreted by the session mode.
func (h *BrowseHandler) Input(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "E_BAD_REQUEST", "invalid body")
		return
	}

	res, err := h.svc.SubmitText(r.Context(), userID(r), in.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *BrowseHandler) respondView(w http.ResponseWriter) func(*service.View, error) {
	return func(v *service.View, err error) {
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}
