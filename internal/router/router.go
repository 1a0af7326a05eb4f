package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"unihub/internal/catalog"
	"unihub/internal/compare"
	"unihub/internal/config"
	"unihub/internal/handler"
	"unihub/internal/middleware"
	"unihub/internal/service"
	"unihub/internal/session"
)

const version = "0.3.0"

// New builds the HTTP router over the shared catalog and the per-user
// stores. export may be nil when no object store is configured.
func New(cfg *config.Config, cat *catalog.Catalog, sessions session.Store, sets compare.Store, export *service.ExportService) http.Handler {
	browseSvc := service.NewBrowseService(cat, sessions, cfg.RecordsPerPage, cfg.IndexPerPage)
	compareSvc := service.NewCompareService(cat, sets)

	healthH := handler.NewHealthHandler(version)
	catalogH := handler.NewCatalogHandler(browseSvc, export)
	browseH := handler.NewBrowseHandler(browseSvc)
	compareH := handler.NewCompareHandler(compareSvc)
	adminH := handler.NewAdminHandler(cat)

	requireInternal := middleware.RequireInternalSecret(cfg.InternalSecret)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Trace)

	r.Get("/v1/health", healthH.Health)

	// Shared catalog surfaces
	r.Get("/v1/catalog/cities", catalogH.Cities)
	r.Get("/v1/catalog/specialties", catalogH.Specialties)
	r.Get("/v1/catalog/records/{record_id}", catalogH.Record)
	r.Get("/v1/catalog/random", catalogH.Random)
	r.Get("/v1/catalog/export-url", catalogH.ExportURL)

	// Per-user browsing session
	r.Route("/v1/users/{user_id}", func(r chi.Router) {
		r.Get("/view", browseH.View)
		r.Post("/filters/city", browseH.SelectCity)
		r.Post("/filters/specialty", browseH.SelectSpecialty)
		r.Post("/filters/score", browseH.RequestScore)
		r.Post("/filters/reset", browseH.Reset)
		r.Post("/page", browseH.GotoPage)
		r.Post("/page/next", browseH.NextPage)
		r.Post("/page/prev", browseH.PrevPage)
		r.Post("/input", browseH.Input)

		r.Get("/compare", compareH.List)
		r.Post("/compare", compareH.Add)
		r.Delete("/compare", compareH.Clear)
	})

	// Internal: operator → service
	r.Group(func(r chi.Router) {
		r.Use(requireInternal)
		r.Post("/internal/catalog/reload", adminH.Reload)
	})

	return r
}
