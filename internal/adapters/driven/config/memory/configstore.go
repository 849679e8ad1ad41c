// Package memory provides an in-memory config store. It backs tests
// and ad-hoc wiring where no config file should be touched.
package memory

import (
	"sync"
	"time"

	"github.com/custodia-labs/orderflow/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore.
// Nothing is persisted; Save and Load are no-ops.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Save persists the current configuration (no-op for memory store).
func (s *ConfigStore) Save() error {
	return nil
}

// Load reads configuration from storage (no-op for memory store).
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

// Settings maps the stored keys onto the typed settings record, with
// defaults applied. Keys are shared with the file store.
func (s *ConfigStore) Settings() domain.Settings {
	settings := domain.Settings{
		Billing: domain.BillingSettings{
			APIKey:  s.GetString(file.KeyBillingAPIKey),
			BaseURL: s.GetString(file.KeyBillingBaseURL),
		},
		Messaging: domain.MessagingSettings{
			AccountSID: s.GetString(file.KeyMessagingAccountSID),
			KeySID:     s.GetString(file.KeyMessagingKeySID),
			KeySecret:  s.GetString(file.KeyMessagingKeySecret),
			BaseURL:    s.GetString(file.KeyMessagingBaseURL),
			FromNumber: s.GetString(file.KeyMessagingFromNumber),
		},
		HTTPTimeout:  time.Duration(s.GetInt(file.KeyHTTPTimeoutSeconds)) * time.Second,
		SanitizeMode: domain.SanitizeMode(s.GetString(file.KeyOrderSanitizeMode)),
	}
	return settings.Normalised()
}
