package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
	"github.com/custodia-labs/orderflow/internal/core/ports/driving"
)

// Ensure CustomerService implements the interface.
var _ driving.CustomerService = (*CustomerService)(nil)

// customersEndpoint is the billing API's customer collection.
const customersEndpoint = "customers"

// GetOrCreateStage identifies which stage of GetOrCreateByEmail
// failed.
type GetOrCreateStage string

// Stages of the get-or-create flow.
const (
	StageLookup GetOrCreateStage = "lookup"
	StageCreate GetOrCreateStage = "create"
)

// GetOrCreateError is a failure in GetOrCreateByEmail. It presents a
// single composite message while preserving the failing stage and the
// original error for callers that need them.
type GetOrCreateError struct {
	Stage GetOrCreateStage
	Email string
	Err   error
}

// Error implements the error interface.
func (e *GetOrCreateError) Error() string {
	return fmt.Sprintf("failed to get or create customer by email (%s): %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *GetOrCreateError) Unwrap() error {
	return e.Err
}

// CustomerService manages billing-customer records on the remote
// billing API.
type CustomerService struct {
	client   driven.RESTClient
	endpoint string
}

// NewCustomerService creates a customer service backed by the billing
// API client.
func NewCustomerService(client driven.RESTClient) *CustomerService {
	return &CustomerService{
		client:   client,
		endpoint: customersEndpoint,
	}
}

// GetByEmail retrieves the customers matching email. An empty result
// list is not an error.
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (domain.List[domain.Customer], error) {
	if err := domain.ValidateEmail(email); err != nil {
		return domain.List[domain.Customer]{}, err
	}

	return run("retrieve customer by email", func() (domain.List[domain.Customer], error) {
		query := url.Values{}
		query.Set("email", email)
		var list domain.List[domain.Customer]
		if err := s.client.Get(ctx, s.endpoint, query, &list); err != nil {
			return domain.List[domain.Customer]{}, err
		}
		return list, nil
	})
}

// Create creates a customer. Email is required and must be valid. A
// nested address is flattened into address[...] form keys and an
// over-long description is truncated before sending.
func (s *CustomerService) Create(ctx context.Context, params domain.CustomerParams) (*domain.Customer, error) {
	if err := domain.RequiredFields(map[string]any{"email": params.Email}, "email"); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(params.Email); err != nil {
		return nil, err
	}

	return run("create customer", func() (*domain.Customer, error) {
		var customer domain.Customer
		if err := s.client.Post(ctx, s.endpoint, params.Encode(), &customer); err != nil {
			return nil, err
		}
		return &customer, nil
	})
}

// GetOrCreateByEmail returns the first customer matching email, or
// creates one from params when none exists. Any failure is returned
// as a *GetOrCreateError tagging the failing stage.
func (s *CustomerService) GetOrCreateByEmail(
	ctx context.Context,
	email string,
	params domain.CustomerParams,
) (*domain.Customer, error) {
	list, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, &GetOrCreateError{Stage: StageLookup, Email: email, Err: err}
	}

	if existing, ok := list.First(); ok {
		return &existing, nil
	}

	created, err := s.Create(ctx, params)
	if err != nil {
		return nil, &GetOrCreateError{Stage: StageCreate, Email: email, Err: err}
	}
	return created, nil
}
