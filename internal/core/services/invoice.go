package services

import (
	"context"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
	"github.com/custodia-labs/orderflow/internal/core/ports/driving"
)

// Ensure InvoiceService implements the interface.
var _ driving.InvoiceService = (*InvoiceService)(nil)

// Billing API invoice collections.
const (
	invoicesEndpoint     = "invoices"
	invoiceItemsEndpoint = "invoiceitems"
)

// InvoiceService manages invoices and their line items on the remote
// billing API.
type InvoiceService struct {
	client        driven.RESTClient
	endpoint      string
	itemsEndpoint string
}

// NewInvoiceService creates an invoice service backed by the billing
// API client.
func NewInvoiceService(client driven.RESTClient) *InvoiceService {
	return &InvoiceService{
		client:        client,
		endpoint:      invoicesEndpoint,
		itemsEndpoint: invoiceItemsEndpoint,
	}
}

// Create creates a draft invoice for a customer.
func (s *InvoiceService) Create(ctx context.Context, params domain.InvoiceParams) (*domain.Invoice, error) {
	if err := domain.RequiredFields(map[string]any{"customer": params.Customer}, "customer"); err != nil {
		return nil, err
	}

	return run("create invoice", func() (*domain.Invoice, error) {
		var invoice domain.Invoice
		if err := s.client.Post(ctx, s.endpoint, params.Encode(), &invoice); err != nil {
			return nil, err
		}
		return &invoice, nil
	})
}

// CreateItem creates a line item. Customer, amount and currency are
// required; a zero amount counts as missing.
func (s *InvoiceService) CreateItem(ctx context.Context, params domain.InvoiceItemParams) (*domain.InvoiceItem, error) {
	required := map[string]any{
		"customer": params.Customer,
		"amount":   params.Amount,
		"currency": params.Currency,
	}
	if err := domain.RequiredFields(required, "customer", "amount", "currency"); err != nil {
		return nil, err
	}

	return run("create invoice item", func() (*domain.InvoiceItem, error) {
		var item domain.InvoiceItem
		if err := s.client.Post(ctx, s.itemsEndpoint, params.Encode(), &item); err != nil {
			return nil, err
		}
		return &item, nil
	})
}

// Finalize transitions a draft invoice to open, assigning its hosted
// payment link. The finalize call carries an empty body.
func (s *InvoiceService) Finalize(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := domain.RequiredFields(map[string]any{"id": id}, "id"); err != nil {
		return nil, err
	}

	return run("finalize invoice", func() (*domain.Invoice, error) {
		var invoice domain.Invoice
		if err := s.client.Post(ctx, s.endpoint+"/"+id+"/finalize", nil, &invoice); err != nil {
			return nil, err
		}
		return &invoice, nil
	})
}

// GetByID retrieves an invoice.
func (s *InvoiceService) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := domain.RequiredFields(map[string]any{"id": id}, "id"); err != nil {
		return nil, err
	}

	return run("retrieve invoice by ID", func() (*domain.Invoice, error) {
		var invoice domain.Invoice
		if err := s.client.Get(ctx, s.endpoint+"/"+id, nil, &invoice); err != nil {
			return nil, err
		}
		return &invoice, nil
	})
}

// Update modifies an existing invoice. The ID is required but an
// empty update is allowed.
func (s *InvoiceService) Update(ctx context.Context, id string, params domain.InvoiceUpdateParams) (*domain.Invoice, error) {
	if err := domain.RequiredFields(map[string]any{"id": id}, "id"); err != nil {
		return nil, err
	}

	return run("update invoice", func() (*domain.Invoice, error) {
		var invoice domain.Invoice
		if err := s.client.Patch(ctx, s.endpoint+"/"+id, params.Encode(), &invoice); err != nil {
			return nil, err
		}
		return &invoice, nil
	})
}

// Delete deletes a draft invoice.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if err := domain.RequiredFields(map[string]any{"id": id}, "id"); err != nil {
		return err
	}

	_, err := run("delete invoice", func() (struct{}, error) {
		return struct{}{}, s.client.Delete(ctx, s.endpoint+"/"+id, nil)
	})
	return err
}

// List returns invoices matching the given query parameters.
func (s *InvoiceService) List(ctx context.Context, params url.Values) (domain.List[domain.Invoice], error) {
	return run("list invoices", func() (domain.List[domain.Invoice], error) {
		var list domain.List[domain.Invoice]
		if err := s.client.Get(ctx, s.endpoint, params, &list); err != nil {
			return domain.List[domain.Invoice]{}, err
		}
		return list, nil
	})
}
