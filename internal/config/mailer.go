package config

import (
	"fmt"
	"os"
)

const (
	EnvMailerAPIKey = "BECSUS_MAILER_API_KEY"
	EnvMailerFrom   = "BECSUS_MAILER_FROM"
	EnvMailerTo     = "BECSUS_MAILER_TO"
)

// MailerConfig holds parameters for outbound contact mail delivery.
type MailerConfig struct {
	APIKey string `toml:"api_key"`
	From   string `toml:"from"`
	To     string `toml:"to"`
}

// Enabled reports whether an API key is configured. Without a key contact
// messages are logged instead of delivered.
func (c *MailerConfig) Enabled() bool {
	return c.APIKey != ""
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *MailerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *MailerConfig) Merge(overlay *MailerConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.From != "" {
		c.From = overlay.From
	}
	if overlay.To != "" {
		c.To = overlay.To
	}
}

func (c *MailerConfig) loadDefaults() {
	if c.From == "" {
		c.From = "no-reply@becsus.hu"
	}
}

func (c *MailerConfig) loadEnv() {
	if v := os.Getenv(EnvMailerAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvMailerFrom); v != "" {
		c.From = v
	}
	if v := os.Getenv(EnvMailerTo); v != "" {
		c.To = v
	}
}

func (c *MailerConfig) validate() error {
	if c.Enabled() && c.To == "" {
		return fmt.Errorf("to required when api_key is set")
	}
	return nil
}
