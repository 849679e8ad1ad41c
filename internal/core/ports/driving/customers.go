package driving

import (
	"context"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// CustomerService manages billing-customer records on the remote
// billing API. All operations validate their inputs locally before
// issuing a network call.
type CustomerService interface {
	// GetByEmail returns the customers matching email. The list may be
	// empty; that is not an error.
	GetByEmail(ctx context.Context, email string) (domain.List[domain.Customer], error)

	// Create creates a customer. Email is required and must be valid.
	Create(ctx context.Context, params domain.CustomerParams) (*domain.Customer, error)

	// GetOrCreateByEmail returns the first customer matching email, or
	// creates one from params when none exists. Failures are returned
	// as *services.GetOrCreateError tagging which stage failed.
	GetOrCreateByEmail(ctx context.Context, email string, params domain.CustomerParams) (*domain.Customer, error)
}
