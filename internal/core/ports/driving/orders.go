package driving

import (
	"context"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// OrderService is the order-fulfilment pipeline: find or create the
// billing customer, build and finalise the invoice, text the customer
// the payment link.
type OrderService interface {
	// FindOrCreateCustomer resolves email to a billing-customer ID,
	// creating the customer from the given details when none exists.
	// Address is a single-line "line1, city, state zip" string.
	FindOrCreateCustomer(ctx context.Context, email, name, phone, address string) (string, error)

	// CreateOrderInvoice creates a draft invoice for the customer,
	// adds one line item per order item (sequentially), finalises the
	// invoice and returns its ID and hosted payment link.
	//
	// There is no rollback: when item creation fails mid-way, items
	// already created remain on the remote side.
	CreateOrderInvoice(ctx context.Context, customerID string, items []domain.OrderItem) (domain.InvoiceLink, error)

	// SendInvoiceLink texts the payment link to the customer.
	SendInvoiceLink(ctx context.Context, link, phone, name string) (*domain.Message, error)

	// HandleOrder runs the full pipeline from raw order input.
	HandleOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error)
}
