package handler

import (
	"log"
	"net/http"

	"unihub/internal/catalog"
)

// AdminHandler serves the operator-only surface.
type AdminHandler struct {
	catalog *catalog.Catalog
}

func NewAdminHandler(cat *catalog.Catalog) *AdminHandler {
	return &AdminHandler{catalog: cat}
}

// POST /internal/catalog/reload
// Re-ingests the row source. Readers keep the previous snapshot while the
// new one is built and on failure.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	n, err := h.catalog.Load(r.Context())
	if err != nil {
		log.Printf("catalog reload failed: %v", err)
		writeError(w, http.StatusInternalServerError, "E_INTERNAL", err.Error())
		return
	}
	log.Printf("catalog reloaded: %d records", n)
	writeJSON(w, http.StatusOK, map[string]any{"records": n})
}
