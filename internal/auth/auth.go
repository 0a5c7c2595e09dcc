// Package auth guards admin routes with OIDC bearer token verification.
package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"

	"becsus/pkg/handlers"
	"becsus/pkg/lifecycle"
)

// ErrUnauthorized indicates a missing or invalid bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// System verifies admin identity for protected routes.
type System interface {
	// Start registers a startup hook performing OIDC provider discovery.
	Start(lc *lifecycle.Coordinator) error
	// Guard wraps a handler with bearer token verification.
	Guard(next http.HandlerFunc) http.HandlerFunc
}

// NewDisabled creates a pass-through auth system for local development.
func NewDisabled(logger *slog.Logger) System {
	logger.Warn("admin auth disabled, protected routes are open")
	return &disabled{}
}

type disabled struct{}

func (d *disabled) Start(*lifecycle.Coordinator) error { return nil }

func (d *disabled) Guard(next http.HandlerFunc) http.HandlerFunc { return next }

type oidcSystem struct {
	issuer   string
	clientID string
	logger   *slog.Logger

	mu       sync.RWMutex
	verifier *oidc.IDTokenVerifier
}

// New creates an OIDC-backed auth system. Provider discovery happens during
// lifecycle startup; requests arriving before discovery completes are rejected.
func New(issuer, clientID string, logger *slog.Logger) System {
	return &oidcSystem{
		issuer:   issuer,
		clientID: clientID,
		logger:   logger.With("system", "auth"),
	}
}

func (s *oidcSystem) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting auth system")

	lc.OnStartup(func() {
		provider, err := oidc.NewProvider(lc.Context(), s.issuer)
		if err != nil {
			s.logger.Error("oidc provider discovery failed", "issuer", s.issuer, "error", err)
			return
		}

		s.mu.Lock()
		s.verifier = provider.Verifier(&oidc.Config{ClientID: s.clientID})
		s.mu.Unlock()

		s.logger.Info("oidc provider ready", "issuer", s.issuer)
	})

	return nil
}

func (s *oidcSystem) Guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			handlers.RespondError(w, s.logger, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		s.mu.RLock()
		verifier := s.verifier
		s.mu.RUnlock()

		if verifier == nil {
			handlers.RespondError(w, s.logger, http.StatusServiceUnavailable, ErrUnauthorized)
			return
		}

		token, err := verifier.Verify(r.Context(), raw)
		if err != nil {
			s.logger.Debug("token verification failed", "error", err)
			handlers.RespondError(w, s.logger, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		s.logger.Debug("admin request authorized", "subject", token.Subject)
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
