package domain

import "time"

// DefaultHTTPTimeout bounds every remote call when no timeout is
// configured. Calls without a bound can hang forever on a dead
// transport.
const DefaultHTTPTimeout = 30 * time.Second

// BillingSettings configure the remote billing API client. The
// billing API authenticates with the API key alone as the basic-auth
// user and an empty secret.
type BillingSettings struct {
	APIKey  string
	BaseURL string
}

// IsConfigured returns true if billing credentials are present.
func (s BillingSettings) IsConfigured() bool {
	return s.APIKey != "" && s.BaseURL != ""
}

// MessagingSettings configure the remote messaging API client. The
// messaging API authenticates with a key SID and secret pair; the
// account SID is part of the base URL path.
type MessagingSettings struct {
	AccountSID string
	KeySID     string
	KeySecret  string
	BaseURL    string
	FromNumber string
}

// IsConfigured returns true if messaging credentials are present.
func (s MessagingSettings) IsConfigured() bool {
	return s.KeySID != "" && s.KeySecret != "" && s.BaseURL != "" && s.FromNumber != ""
}

// Settings is the full static configuration surface, supplied at
// process start. There is no runtime reconfiguration.
type Settings struct {
	Billing      BillingSettings
	Messaging    MessagingSettings
	HTTPTimeout  time.Duration
	SanitizeMode SanitizeMode
}

// Normalised returns a copy with defaults applied for unset values.
func (s Settings) Normalised() Settings {
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = DefaultHTTPTimeout
	}
	if !s.SanitizeMode.IsValid() {
		s.SanitizeMode = SanitizePadded
	}
	return s
}
