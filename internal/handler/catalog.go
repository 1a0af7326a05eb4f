package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"unihub/internal/service"
)

// CatalogHandler serves the shared catalog surfaces: the city/specialty
// pickers, record cards, the random pick and the full-table export link.
type CatalogHandler struct {
	browse *service.BrowseService
	export *service.ExportService // nil when export is not configured
}

func NewCatalogHandler(browse *service.BrowseService, export *service.ExportService) *CatalogHandler {
	return &CatalogHandler{browse: browse, export: export}
}

// GET /v1/catalog/cities?page=N
func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	wdw := h.browse.Cities(queryPage(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":      wdw.Items,
		"page":        wdw.Page,
		"total_pages": wdw.TotalPages,
		"total":       wdw.TotalItems,
	})
}

// GET /v1/catalog/specialties?page=N
func (h *CatalogHandler) Specialties(w http.ResponseWriter, r *http.Request) {
	wdw := h.browse.Specialties(queryPage(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"specialties": wdw.Items,
		"page":        wdw.Page,
		"total_pages": wdw.TotalPages,
		"total":       wdw.TotalItems,
	})
}

// GET /v1/catalog/records/{record_id}
func (h *CatalogHandler) Record(w http.ResponseWriter, r *http.Request) {
	rec, err := h.browse.Card(chi.URLParam(r, "record_id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

// GET /v1/catalog/random
func (h *CatalogHandler) Random(w http.ResponseWriter, r *http.Request) {
	rec, err := h.browse.Random()
	if err != nil {
		writeError(w, http.StatusNotFound, "E_NOT_FOUND", "catalog is empty")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": rec})
}

// GET /v1/catalog/export-url
func (h *CatalogHandler) ExportURL(w http.ResponseWriter, r *http.Request) {
	if h.export == nil {
		writeError(w, http.StatusNotFound, "E_NOT_FOUND", "export is not configured")
		return
	}
	link, err := h.export.Link(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "E_INTERNAL", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

func queryPage(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
