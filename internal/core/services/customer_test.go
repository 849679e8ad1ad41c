package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

func TestCustomerService_GetByEmail_InvalidEmail(t *testing.T) {
	client := newFakeRESTClient()
	svc := NewCustomerService(client)

	_, err := svc.GetByEmail(context.Background(), "not-an-email")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	// Validation short-circuits before any network call.
	assert.Equal(t, 0, client.callCount())
}

func TestCustomerService_GetByEmail_EmptyList(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("GET", "customers", map[string]any{"object": "list", "data": []any{}})
	svc := NewCustomerService(client)

	list, err := svc.GetByEmail(context.Background(), "a@b.com")

	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, "a@b.com", client.lastCall().Query.Get("email"))
}

func TestCustomerService_Create_RequiresEmail(t *testing.T) {
	client := newFakeRESTClient()
	svc := NewCustomerService(client)

	_, err := svc.Create(context.Background(), domain.CustomerParams{Name: "Sam"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "email")
	assert.Equal(t, 0, client.callCount())
}

func TestCustomerService_Create_FlattensAddress(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("POST", "customers", map[string]any{"id": "cus_123", "email": "a@b.com"})
	svc := NewCustomerService(client)

	customer, err := svc.Create(context.Background(), domain.CustomerParams{
		Email: "a@b.com",
		Address: &domain.Address{
			Line1:      "1 Main St",
			City:       "Springfield",
			State:      "IL",
			PostalCode: "62701",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "cus_123", customer.ID)

	form := client.lastCall().Form
	assert.Equal(t, "1 Main St", form.Get("address[line1]"))
	assert.Equal(t, "Springfield", form.Get("address[city]"))
	assert.Equal(t, "IL", form.Get("address[state]"))
	assert.Equal(t, "62701", form.Get("address[postal_code]"))
	// The nested key never reaches the wire.
	_, hasNested := form["address"]
	assert.False(t, hasNested)
}

func TestCustomerService_Create_TruncatesDescription(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("POST", "customers", map[string]any{"id": "cus_123"})
	svc := NewCustomerService(client)

	_, err := svc.Create(context.Background(), domain.CustomerParams{
		Email:       "a@b.com",
		Description: strings.Repeat("x", 400),
	})

	require.NoError(t, err)
	assert.Len(t, client.lastCall().Form.Get("description"), 350)
}

func TestCustomerService_GetOrCreateByEmail_Existing(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("GET", "customers", map[string]any{
		"object": "list",
		"data":   []any{map[string]any{"id": "cus_existing", "email": "a@b.com"}},
	})
	svc := NewCustomerService(client)

	customer, err := svc.GetOrCreateByEmail(context.Background(), "a@b.com", domain.CustomerParams{Email: "a@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "cus_existing", customer.ID)
	// No POST issued when the lookup found a record.
	assert.Equal(t, 1, client.callCount())
}

func TestCustomerService_GetOrCreateByEmail_CreatesWhenMissing(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("GET", "customers", map[string]any{"object": "list", "data": []any{}})
	client.respond("POST", "customers", map[string]any{"id": "cus_new", "email": "a@b.com"})
	svc := NewCustomerService(client)

	customer, err := svc.GetOrCreateByEmail(context.Background(), "a@b.com", domain.CustomerParams{
		Email: "a@b.com",
		Name:  "Sam",
	})

	require.NoError(t, err)
	assert.Equal(t, "cus_new", customer.ID)
	assert.Equal(t, 2, client.callCount())
	assert.Equal(t, "POST", client.lastCall().Method)
}

func TestCustomerService_GetOrCreateByEmail_LookupFailureTagged(t *testing.T) {
	client := newFakeRESTClient()
	remoteErr := &domain.RemoteError{StatusCode: 500, Message: "server error"}
	client.fail("GET", "customers", remoteErr)
	svc := NewCustomerService(client)

	_, err := svc.GetOrCreateByEmail(context.Background(), "a@b.com", domain.CustomerParams{Email: "a@b.com"})

	require.Error(t, err)
	var gocErr *GetOrCreateError
	require.ErrorAs(t, err, &gocErr)
	assert.Equal(t, StageLookup, gocErr.Stage)
	// The original error kind survives unwrapping.
	var unwrapped *domain.RemoteError
	assert.ErrorAs(t, err, &unwrapped)
	assert.Contains(t, err.Error(), "failed to get or create customer by email")
}

func TestCustomerService_GetOrCreateByEmail_CreateFailureTagged(t *testing.T) {
	client := newFakeRESTClient()
	client.respond("GET", "customers", map[string]any{"object": "list", "data": []any{}})
	client.fail("POST", "customers", &domain.RemoteError{StatusCode: 402, Message: "card declined"})
	svc := NewCustomerService(client)

	_, err := svc.GetOrCreateByEmail(context.Background(), "a@b.com", domain.CustomerParams{Email: "a@b.com"})

	require.Error(t, err)
	var gocErr *GetOrCreateError
	require.ErrorAs(t, err, &gocErr)
	assert.Equal(t, StageCreate, gocErr.Stage)
}
