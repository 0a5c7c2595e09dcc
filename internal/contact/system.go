package contact

import (
	"context"
	"log/slog"
)

// System defines the public contract for contact operations.
type System interface {
	Handler() *Handler
	Send(ctx context.Context, msg Message) (string, error)
}

type system struct {
	mailer Mailer
	logger *slog.Logger
}

// New creates a contact system delivering through the given mailer.
func New(mailer Mailer, logger *slog.Logger) System {
	return &system{
		mailer: mailer,
		logger: logger.With("system", "contact"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Send validates the message and forwards it through the mailer.
func (s *system) Send(ctx context.Context, msg Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	id, err := s.mailer.Send(ctx, msg)
	if err != nil {
		s.logger.Error("contact delivery failed", "error", err)
		return "", ErrSendFailed
	}

	s.logger.Info("contact message delivered", "subject", msg.Subject, "message_id", id)
	return id, nil
}
