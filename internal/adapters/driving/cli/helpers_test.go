package cli

import (
	"context"
	"errors"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// setupTestServices swaps the package-level services for mocks and
// returns a cleanup restoring the originals.
func setupTestServices() func() {
	oldCustomer := customerService
	oldInvoice := invoiceService
	oldMessage := messageService
	oldOrder := orderService

	customerService = &mockCustomerService{}
	invoiceService = &mockInvoiceService{}
	messageService = &mockMessageService{}
	orderService = &mockOrderService{}

	return func() {
		customerService = oldCustomer
		invoiceService = oldInvoice
		messageService = oldMessage
		orderService = oldOrder
	}
}

type mockCustomerService struct{}

func (m *mockCustomerService) GetByEmail(_ context.Context, email string) (domain.List[domain.Customer], error) {
	return domain.List[domain.Customer]{
		Object: "list",
		Data:   []domain.Customer{{ID: "cus_mock1", Email: email, Name: "Sam Doe"}},
	}, nil
}

func (m *mockCustomerService) Create(_ context.Context, params domain.CustomerParams) (*domain.Customer, error) {
	return &domain.Customer{ID: "cus_mock2", Email: params.Email, Name: params.Name, Phone: params.Phone}, nil
}

func (m *mockCustomerService) GetOrCreateByEmail(_ context.Context, email string, params domain.CustomerParams) (*domain.Customer, error) {
	return &domain.Customer{ID: "cus_mock1", Email: email, Name: params.Name}, nil
}

type mockInvoiceService struct{}

func (m *mockInvoiceService) Create(_ context.Context, params domain.InvoiceParams) (*domain.Invoice, error) {
	return &domain.Invoice{ID: "in_mock1", Customer: params.Customer, Status: domain.InvoiceStatusDraft}, nil
}

func (m *mockInvoiceService) CreateItem(_ context.Context, params domain.InvoiceItemParams) (*domain.InvoiceItem, error) {
	return &domain.InvoiceItem{
		ID:       "ii_mock1",
		Customer: params.Customer,
		Amount:   params.Amount,
		Currency: params.Currency,
	}, nil
}

func (m *mockInvoiceService) Finalize(_ context.Context, id string) (*domain.Invoice, error) {
	return &domain.Invoice{
		ID:               id,
		Status:           domain.InvoiceStatusOpen,
		HostedInvoiceURL: "https://pay.example.com/" + id,
	}, nil
}

func (m *mockInvoiceService) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	return &domain.Invoice{
		ID:        id,
		Customer:  "cus_mock1",
		Status:    domain.InvoiceStatusOpen,
		AmountDue: 1100,
		Currency:  "usd",
	}, nil
}

func (m *mockInvoiceService) Update(_ context.Context, id string, _ domain.InvoiceUpdateParams) (*domain.Invoice, error) {
	return &domain.Invoice{ID: id, Status: domain.InvoiceStatusDraft}, nil
}

func (m *mockInvoiceService) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *mockInvoiceService) List(_ context.Context, _ url.Values) (domain.List[domain.Invoice], error) {
	return domain.List[domain.Invoice]{
		Object: "list",
		Data: []domain.Invoice{
			{ID: "in_mock1", Customer: "cus_mock1", Status: domain.InvoiceStatusOpen, AmountDue: 1100, Currency: "usd"},
			{ID: "in_mock2", Customer: "cus_mock2", Status: domain.InvoiceStatusDraft, Currency: "usd"},
		},
	}, nil
}

type mockMessageService struct{}

func (m *mockMessageService) Send(_ context.Context, params domain.MessageParams) (*domain.Message, error) {
	return &domain.Message{SID: "SM_mock1", To: params.To, From: params.From, Body: params.Body, Status: "queued"}, nil
}

func (m *mockMessageService) Create(_ context.Context, to, bodyTemplate string, _ map[string]string) (*domain.Message, error) {
	return &domain.Message{SID: "SM_mock1", To: to, From: "+15550001111", Body: bodyTemplate, Status: "queued"}, nil
}

func (m *mockMessageService) List(_ context.Context, _ url.Values) (domain.List[domain.Message], error) {
	return domain.List[domain.Message]{
		Data: []domain.Message{{SID: "SM_mock1", To: "+15552223333", Status: "delivered"}},
	}, nil
}

func (m *mockMessageService) GetBySID(_ context.Context, sid string) (*domain.Message, error) {
	return &domain.Message{SID: sid, To: "+15552223333", From: "+15550001111", Status: "delivered"}, nil
}

type mockOrderService struct{}

func (m *mockOrderService) FindOrCreateCustomer(_ context.Context, _, _, _, _ string) (string, error) {
	return "cus_mock1", nil
}

func (m *mockOrderService) CreateOrderInvoice(_ context.Context, _ string, _ []domain.OrderItem) (domain.InvoiceLink, error) {
	return domain.InvoiceLink{InvoiceID: "in_mock1", InvoiceURL: "https://pay.example.com/in_mock1"}, nil
}

func (m *mockOrderService) SendInvoiceLink(_ context.Context, _, _, _ string) (*domain.Message, error) {
	return &domain.Message{SID: "SM_mock1"}, nil
}

func (m *mockOrderService) HandleOrder(_ context.Context, _ domain.OrderRequest) (*domain.OrderResult, error) {
	return &domain.OrderResult{
		CustomerID: "cus_mock1",
		Invoice:    domain.InvoiceLink{InvoiceID: "in_mock1", InvoiceURL: "https://pay.example.com/in_mock1"},
		MessageSID: "SM_mock1",
	}, nil
}

// mockOrderServiceError fails the pipeline.
type mockOrderServiceError struct {
	mockOrderService
}

func (m *mockOrderServiceError) HandleOrder(_ context.Context, _ domain.OrderRequest) (*domain.OrderResult, error) {
	return nil, errors.New("customer lookup unavailable")
}
