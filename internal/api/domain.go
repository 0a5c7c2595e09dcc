package api

import (
	"fmt"

	"becsus/internal/appraisal"
	"becsus/internal/auth"
	"becsus/internal/config"
	"becsus/internal/contact"
	"becsus/internal/listings"
	"becsus/internal/uploads"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Appraisal appraisal.System
	Listings  listings.System
	Uploads   uploads.System
	Contact   contact.System
	Auth      auth.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	var valuer appraisal.Valuer
	if cfg.Gemini.Enabled() {
		gv, err := appraisal.NewGeminiValuer(
			runtime.Lifecycle.Context(),
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			cfg.Gemini.TimeoutDuration(),
			runtime.Logger,
		)
		if err != nil {
			return nil, fmt.Errorf("create gemini valuer: %w", err)
		}
		valuer = gv
	} else {
		runtime.Logger.Warn("gemini api key not configured, appraisals use fallback only")
	}

	var mailer contact.Mailer
	if cfg.Mailer.Enabled() {
		mailer = contact.NewResendMailer(cfg.Mailer.APIKey, cfg.Mailer.From, cfg.Mailer.To)
	} else {
		mailer = contact.NewLogMailer(runtime.Logger)
	}

	var authSystem auth.System
	if cfg.Auth.Enabled {
		authSystem = auth.New(cfg.Auth.Issuer, cfg.Auth.ClientID, runtime.Logger)
	} else {
		authSystem = auth.NewDisabled(runtime.Logger)
	}

	return &Domain{
		Appraisal: appraisal.New(valuer, runtime.Logger),
		Listings: listings.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
		Uploads: uploads.New(
			runtime.Storage,
			runtime.Logger,
			cfg.API.MaxUploadSizeBytes(),
		),
		Contact: contact.New(mailer, runtime.Logger),
		Auth:    authSystem,
	}, nil
}
