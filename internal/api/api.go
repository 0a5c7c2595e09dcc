// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"becsus/internal/config"
	"becsus/internal/infrastructure"
	"becsus/pkg/middleware"
	"becsus/pkg/module"
)

// ErrInternal is the generic response body for recovered panics.
var ErrInternal = errors.New("internal server error")

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(cfg, runtime)
	if err != nil {
		return nil, fmt.Errorf("create domain: %w", err)
	}

	if err := domain.Auth.Start(runtime.Lifecycle); err != nil {
		return nil, fmt.Errorf("auth start failed: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Recover(runtime.Logger, ErrInternal))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
