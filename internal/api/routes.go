package api

import (
	"net/http"

	"becsus/internal/config"
	"becsus/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain, cfg *config.Config) {
	guard := domain.Auth.Guard

	routes.Register(
		mux,
		domain.Appraisal.Handler().Routes(),
		domain.Listings.Handler(guard).Routes(),
		domain.Uploads.Handler(guard, cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Contact.Handler().Routes(),
	)
}
