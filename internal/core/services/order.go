package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driving"
	"github.com/custodia-labs/orderflow/internal/logger"
)

// Ensure OrderService implements the interface.
var _ driving.OrderService = (*OrderService)(nil)

// invoiceCurrency is the currency every order invoice is issued in.
const invoiceCurrency = "usd"

// invoiceLinkTemplate is the SMS sent once an invoice is finalised.
const invoiceLinkTemplate = "Thank you {name} for your order. " +
	"Click the following link to view or pay your invoice: {link}"

// OrderService is the order-fulfilment pipeline composing the three
// domain services.
type OrderService struct {
	customers    driving.CustomerService
	invoices     driving.InvoiceService
	messages     driving.MessageService
	sanitizeMode domain.SanitizeMode
}

// NewOrderService creates the order-fulfilment service. sanitizeMode
// selects how ragged item input is treated when parsing raw orders.
func NewOrderService(
	customers driving.CustomerService,
	invoices driving.InvoiceService,
	messages driving.MessageService,
	sanitizeMode domain.SanitizeMode,
) *OrderService {
	return &OrderService{
		customers:    customers,
		invoices:     invoices,
		messages:     messages,
		sanitizeMode: sanitizeMode,
	}
}

// FindOrCreateCustomer resolves email to a billing-customer ID,
// creating the customer from the given details when none exists.
func (s *OrderService) FindOrCreateCustomer(ctx context.Context, email, name, phone, address string) (string, error) {
	params := domain.CustomerParams{
		Email: email,
		Name:  name,
		Phone: phone,
	}
	if address != "" {
		parsed, err := domain.ParseAddress(address)
		if err != nil {
			return "", err
		}
		params.Address = parsed
	}

	customer, err := s.customers.GetOrCreateByEmail(ctx, email, params)
	if err != nil {
		return "", err
	}
	if customer.ID == "" {
		return "", fmt.Errorf("failed to retrieve or create customer ID for %s", email)
	}

	logger.Info("customer resolved: %s", customer.ID)
	return customer.ID, nil
}

// CreateOrderInvoice creates a draft invoice for the customer, adds
// one line item per order item, finalises the invoice and returns its
// ID and hosted payment link.
//
// Items are created one at a time; on a mid-loop failure the items
// already created remain on the remote side. There is no rollback.
func (s *OrderService) CreateOrderInvoice(
	ctx context.Context,
	customerID string,
	items []domain.OrderItem,
) (domain.InvoiceLink, error) {
	invoice, err := s.invoices.Create(ctx, domain.InvoiceParams{
		Customer:    customerID,
		AutoAdvance: false, // finalised explicitly below
	})
	if err != nil {
		return domain.InvoiceLink{}, err
	}
	if invoice.ID == "" {
		return domain.InvoiceLink{}, fmt.Errorf("failed to create invoice for customer %s", customerID)
	}

	for _, item := range items {
		_, err := s.invoices.CreateItem(ctx, domain.InvoiceItemParams{
			Customer:    customerID,
			Amount:      item.Amount,
			Currency:    invoiceCurrency,
			Description: item.Name,
			Invoice:     invoice.ID,
		})
		if err != nil {
			return domain.InvoiceLink{}, fmt.Errorf("create item %q on invoice %s: %w", item.Name, invoice.ID, err)
		}
	}

	finalized, err := s.invoices.Finalize(ctx, invoice.ID)
	if err != nil {
		return domain.InvoiceLink{}, err
	}
	if finalized.HostedInvoiceURL == "" {
		return domain.InvoiceLink{}, fmt.Errorf("invoice %s finalised without a hosted invoice URL", invoice.ID)
	}

	logger.Info("invoice finalised: %s", finalized.ID)
	return domain.InvoiceLink{
		InvoiceID:  finalized.ID,
		InvoiceURL: finalized.HostedInvoiceURL,
	}, nil
}

// SendInvoiceLink texts the payment link to the customer.
func (s *OrderService) SendInvoiceLink(ctx context.Context, link, phone, name string) (*domain.Message, error) {
	return s.messages.Create(ctx, phone, invoiceLinkTemplate, map[string]string{
		"name": name,
		"link": link,
	})
}

// HandleOrder runs the full pipeline from raw order input: sanitize
// the item lists, resolve the customer, build and finalise the
// invoice, send the payment link.
func (s *OrderService) HandleOrder(ctx context.Context, order domain.OrderRequest) (*domain.OrderResult, error) {
	items, err := domain.ParseOrderItems(
		domain.SplitList(order.Names),
		domain.SplitList(order.Prices),
		domain.SplitList(order.SKUs),
		s.sanitizeMode,
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("order data sanitised: %d items", len(items))

	customerID, err := s.FindOrCreateCustomer(ctx, order.Email, order.Name, order.Phone, order.Address)
	if err != nil {
		return nil, err
	}

	link, err := s.CreateOrderInvoice(ctx, customerID, items)
	if err != nil {
		return nil, err
	}

	message, err := s.SendInvoiceLink(ctx, link.InvoiceURL, order.Phone, order.Name)
	if err != nil {
		return nil, err
	}
	logger.Info("invoice link sent: %s", message.SID)

	return &domain.OrderResult{
		CustomerID: customerID,
		Invoice:    link,
		MessageSID: message.SID,
	}, nil
}
