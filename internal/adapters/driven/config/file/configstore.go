package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// Configuration keys recognised by orderflow.
const (
	KeyBillingAPIKey       = "billing.api_key"
	KeyBillingBaseURL      = "billing.base_url"
	KeyMessagingAccountSID = "messaging.account_sid"
	KeyMessagingKeySID     = "messaging.key_sid"
	KeyMessagingKeySecret  = "messaging.key_secret"
	KeyMessagingBaseURL    = "messaging.base_url"
	KeyMessagingFromNumber = "messaging.from_number"
	KeyHTTPTimeoutSeconds  = "http.timeout_seconds"
	KeyOrderSanitizeMode   = "order.sanitize_mode"
)

// ConfigStore is a file-based implementation of driven.ConfigStore
// using TOML. Configuration is stored in a TOML file within the
// orderflow config directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.orderflow/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".orderflow")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(unflattenMap(s.data))
	if err != nil {
		return err
	}

	// Credentials live here; keep the file private.
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, start empty
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	// Flatten nested tables into dot-notation keys for easier access
	s.data = flattenMap(loaded, "")
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Settings maps the stored keys onto the typed settings record, with
// defaults applied for the timeout and sanitize mode.
func (s *ConfigStore) Settings() domain.Settings {
	settings := domain.Settings{
		Billing: domain.BillingSettings{
			APIKey:  s.GetString(KeyBillingAPIKey),
			BaseURL: s.GetString(KeyBillingBaseURL),
		},
		Messaging: domain.MessagingSettings{
			AccountSID: s.GetString(KeyMessagingAccountSID),
			KeySID:     s.GetString(KeyMessagingKeySID),
			KeySecret:  s.GetString(KeyMessagingKeySecret),
			BaseURL:    s.GetString(KeyMessagingBaseURL),
			FromNumber: s.GetString(KeyMessagingFromNumber),
		},
		HTTPTimeout:  time.Duration(s.GetInt(KeyHTTPTimeoutSeconds)) * time.Second,
		SanitizeMode: domain.SanitizeMode(s.GetString(KeyOrderSanitizeMode)),
	}
	return settings.Normalised()
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"billing": {"api_key": "x"}} becomes {"billing.api_key": "x"}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			// Recursively flatten nested maps
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// unflattenMap converts dot-notation keys back into nested tables so
// the written TOML groups related keys under [billing], [messaging]
// and so on.
func unflattenMap(m map[string]any) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		parts := strings.Split(key, ".")
		cursor := result
		for i, part := range parts {
			if i == len(parts)-1 {
				cursor[part] = value
				break
			}
			next, ok := cursor[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				cursor[part] = next
			}
			cursor = next
		}
	}

	return result
}
