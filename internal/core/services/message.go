package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
	"github.com/custodia-labs/orderflow/internal/core/ports/driving"
)

// Ensure MessageService implements the interface.
var _ driving.MessageService = (*MessageService)(nil)

// The messaging API addresses the collection as Messages.json and
// individual records as Messages/{sid}.json.
const (
	messagesEndpoint       = "Messages.json"
	messagesDetailEndpoint = "Messages"
)

// MessageService sends and retrieves text messages on the remote
// messaging API.
type MessageService struct {
	client     driven.RESTClient
	endpoint   string
	fromNumber string
}

// NewMessageService creates a message service backed by the messaging
// API client. fromNumber is the configured sender for templated
// messages.
func NewMessageService(client driven.RESTClient, fromNumber string) *MessageService {
	return &MessageService{
		client:     client,
		endpoint:   messagesEndpoint,
		fromNumber: fromNumber,
	}
}

// Send sends a message. To, From and Body are required; To and From
// must be valid phone numbers.
func (s *MessageService) Send(ctx context.Context, params domain.MessageParams) (*domain.Message, error) {
	required := map[string]any{
		"To":   params.To,
		"From": params.From,
		"Body": params.Body,
	}
	if err := domain.RequiredFields(required, "To", "From", "Body"); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhoneNumber(params.To); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhoneNumber(params.From); err != nil {
		return nil, err
	}

	return run("send message", func() (*domain.Message, error) {
		var message domain.Message
		if err := s.client.Post(ctx, s.endpoint, params.Encode(), &message); err != nil {
			return nil, err
		}
		return &message, nil
	})
}

// Create renders bodyTemplate with the given placeholders and sends
// the result from the configured from-number.
func (s *MessageService) Create(
	ctx context.Context,
	to string,
	bodyTemplate string,
	placeholders map[string]string,
) (*domain.Message, error) {
	return s.Send(ctx, domain.MessageParams{
		To:   to,
		From: s.fromNumber,
		Body: renderTemplate(bodyTemplate, placeholders),
	})
}

// List returns messages matching the given query parameters.
func (s *MessageService) List(ctx context.Context, params url.Values) (domain.List[domain.Message], error) {
	return run("list messages", func() (domain.List[domain.Message], error) {
		var list domain.List[domain.Message]
		if err := s.client.Get(ctx, s.endpoint, params, &list); err != nil {
			return domain.List[domain.Message]{}, err
		}
		return list, nil
	})
}

// GetBySID retrieves a message. An empty sid fails locally without a
// network call.
func (s *MessageService) GetBySID(ctx context.Context, sid string) (*domain.Message, error) {
	if sid == "" {
		return nil, fmt.Errorf("%w: message SID is required", domain.ErrInvalidInput)
	}

	return run("retrieve message by SID", func() (*domain.Message, error) {
		var message domain.Message
		if err := s.client.Get(ctx, messagesDetailEndpoint+"/"+sid+".json", nil, &message); err != nil {
			return nil, err
		}
		return &message, nil
	})
}

// renderTemplate substitutes every {key} token in template with its
// placeholder value. Substitution is global per key; tokens with no
// matching placeholder are left verbatim.
func renderTemplate(template string, placeholders map[string]string) string {
	body := template
	for key, value := range placeholders {
		body = strings.ReplaceAll(body, "{"+key+"}", value)
	}
	return body
}
