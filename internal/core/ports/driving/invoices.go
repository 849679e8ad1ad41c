package driving

import (
	"context"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// InvoiceService manages invoices and their line items on the remote
// billing API.
type InvoiceService interface {
	// Create creates a draft invoice for a customer.
	Create(ctx context.Context, params domain.InvoiceParams) (*domain.Invoice, error)

	// CreateItem creates a line item. Customer, amount and currency
	// are required; a zero amount counts as missing.
	CreateItem(ctx context.Context, params domain.InvoiceItemParams) (*domain.InvoiceItem, error)

	// Finalize transitions a draft invoice to open, assigning its
	// hosted payment link.
	Finalize(ctx context.Context, id string) (*domain.Invoice, error)

	// GetByID retrieves an invoice.
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)

	// Update modifies an existing invoice. An empty update is allowed.
	Update(ctx context.Context, id string, params domain.InvoiceUpdateParams) (*domain.Invoice, error)

	// Delete deletes a draft invoice.
	Delete(ctx context.Context, id string) error

	// List returns invoices matching the given query parameters.
	List(ctx context.Context, params url.Values) (domain.List[domain.Invoice], error)
}
