package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	err = store.Set(KeyBillingAPIKey, "sk_test_123")
	require.NoError(t, err)

	val, ok := store.Get(KeyBillingAPIKey)
	assert.True(t, ok)
	assert.Equal(t, "sk_test_123", val)

	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	first, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyMessagingFromNumber, "+15551230000"))
	require.NoError(t, first.Set(KeyHTTPTimeoutSeconds, 10))

	second, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "+15551230000", second.GetString(KeyMessagingFromNumber))
	assert.Equal(t, 10, second.GetInt(KeyHTTPTimeoutSeconds))
}

func TestConfigStore_WritesGroupedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBillingAPIKey, "sk_test_123"))
	require.NoError(t, store.Set(KeyBillingBaseURL, "https://api.billing.example/v1/"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[billing]")
	assert.Contains(t, string(raw), "api_key")
	assert.Contains(t, string(raw), "sk_test_123")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyMessagingKeySecret, "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Settings_Defaults(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	settings := store.Settings()

	assert.False(t, settings.Billing.IsConfigured())
	assert.False(t, settings.Messaging.IsConfigured())
	assert.Equal(t, domain.DefaultHTTPTimeout, settings.HTTPTimeout)
	assert.Equal(t, domain.SanitizePadded, settings.SanitizeMode)
}

func TestConfigStore_Settings_Populated(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBillingAPIKey, "sk_test_123"))
	require.NoError(t, store.Set(KeyBillingBaseURL, "https://api.billing.example/v1/"))
	require.NoError(t, store.Set(KeyMessagingAccountSID, "AC123"))
	require.NoError(t, store.Set(KeyMessagingKeySID, "SK123"))
	require.NoError(t, store.Set(KeyMessagingKeySecret, "secret"))
	require.NoError(t, store.Set(KeyMessagingBaseURL, "https://api.messaging.example/Accounts/AC123/"))
	require.NoError(t, store.Set(KeyMessagingFromNumber, "+15551230000"))
	require.NoError(t, store.Set(KeyHTTPTimeoutSeconds, 5))
	require.NoError(t, store.Set(KeyOrderSanitizeMode, "strict"))

	settings := store.Settings()

	assert.True(t, settings.Billing.IsConfigured())
	assert.True(t, settings.Messaging.IsConfigured())
	assert.Equal(t, 5*time.Second, settings.HTTPTimeout)
	assert.Equal(t, domain.SanitizeStrict, settings.SanitizeMode)
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	// Loading with no file present starts empty rather than failing.
	require.NoError(t, store.Load())
	_, ok := store.Get(KeyBillingAPIKey)
	assert.False(t, ok)
}
