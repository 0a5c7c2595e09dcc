package contact

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Mailer delivers a rendered contact message. Implementations return the
// provider's message ID when available.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

var emailTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background-color: #f4f4f4; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
      .field { margin-bottom: 15px; }
      .label { font-weight: bold; color: #555; }
      .value { margin-top: 5px; padding: 10px; background-color: #f9f9f9; border-radius: 3px; }
      .message { white-space: pre-wrap; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h2>Új kapcsolatfelvételi üzenet</h2>
      </div>
      <div class="field">
        <div class="label">Név:</div>
        <div class="value">{{.Name}}</div>
      </div>
      <div class="field">
        <div class="label">Email:</div>
        <div class="value">{{.Email}}</div>
      </div>
      {{if .Phone}}
      <div class="field">
        <div class="label">Telefonszám:</div>
        <div class="value">{{.Phone}}</div>
      </div>
      {{end}}
      <div class="field">
        <div class="label">Tárgy:</div>
        <div class="value">{{.SubjectLabel}}</div>
      </div>
      <div class="field">
        <div class="label">Üzenet:</div>
        <div class="value message">{{.Body}}</div>
      </div>
    </div>
  </body>
</html>`))

type emailData struct {
	Name         string
	Email        string
	Phone        string
	SubjectLabel string
	Body         string
}

// ResendMailer implements Mailer against the Resend API.
type ResendMailer struct {
	client *resend.Client
	from   string
	to     string
}

// NewResendMailer creates a Resend-backed mailer.
func NewResendMailer(apiKey, from, to string) *ResendMailer {
	return &ResendMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	var html strings.Builder
	err := emailTemplate.Execute(&html, emailData{
		Name:         msg.Name,
		Email:        msg.Email,
		Phone:        msg.Phone,
		SubjectLabel: msg.Subject.Label(),
		Body:         msg.Body,
	})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}

	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: fmt.Sprintf("Kapcsolatfelvétel: %s", msg.Subject.Label()),
		Html:    html.String(),
		ReplyTo: msg.Email,
	})
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	return sent.Id, nil
}

// LogMailer implements Mailer by logging the message instead of delivering
// it. Used when no mail provider is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a log-only mailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With("system", "mailer")}
}

func (m *LogMailer) Send(_ context.Context, msg Message) (string, error) {
	m.logger.Info("contact message received (mail delivery disabled)",
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
	)
	return "", nil
}
