package appraisal

import (
	"context"
	"log/slog"
)

// System defines the public contract for appraisal operations.
type System interface {
	Handler() *Handler
	Estimate(ctx context.Context, req Request) (*Estimate, error)
}

type system struct {
	valuer Valuer
	logger *slog.Logger
}

// New creates an appraisal system. valuer may be nil, in which case every
// estimate comes from the fallback calculator.
func New(valuer Valuer, logger *slog.Logger) System {
	return &system{
		valuer: valuer,
		logger: logger.With("system", "appraisal"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Estimate validates the request, makes exactly one external valuation
// attempt, and silently substitutes the fallback calculator on any failure.
// Only validation errors surface to the caller.
func (s *system) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.valuer != nil {
		est, err := s.valuer.Estimate(ctx, req)
		if err == nil {
			s.logger.Info("estimate produced",
				"source", est.Source,
				"market_value", est.MarketValue,
			)
			return est, nil
		}
		s.logger.Warn("external valuation failed, using fallback", "error", err)
	}

	est := Fallback(req)
	s.logger.Info("estimate produced",
		"source", est.Source,
		"market_value", est.MarketValue,
	)
	return est, nil
}
