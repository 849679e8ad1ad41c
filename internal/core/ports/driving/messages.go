package driving

import (
	"context"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// MessageService sends and retrieves text messages on the remote
// messaging API.
type MessageService interface {
	// Send sends a message. To, From and Body are required; To and
	// From must be valid phone numbers.
	Send(ctx context.Context, params domain.MessageParams) (*domain.Message, error)

	// Create renders bodyTemplate by substituting each {key} token
	// with its placeholder value (unmatched tokens are left verbatim)
	// and sends the result from the configured from-number.
	Create(ctx context.Context, to, bodyTemplate string, placeholders map[string]string) (*domain.Message, error)

	// List returns messages matching the given query parameters.
	List(ctx context.Context, params url.Values) (domain.List[domain.Message], error)

	// GetBySID retrieves a message. An empty sid fails locally without
	// a network call.
	GetBySID(ctx context.Context, sid string) (*domain.Message, error)
}
