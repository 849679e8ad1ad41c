package services

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

// Well-known service names registered by the CLI entry point.
const (
	NameBillingClient   = "billing.client"
	NameMessagingClient = "messaging.client"
	NameCustomers       = "customers"
	NameInvoices        = "invoices"
	NameMessages        = "messages"
	NameOrders          = "orders"
)

// Factory produces a service instance. It receives the locator so it
// can resolve its own dependencies by name.
type Factory func(l *Locator) (any, error)

type registration struct {
	factory Factory
	once    sync.Once
	value   any
	err     error
}

// Locator resolves symbolic service names to lazily constructed,
// memoized instances. It is constructed explicitly by the entry point
// and passed down; there is no process-wide instance.
//
// A factory is invoked at most once per registration, including under
// concurrent first lookups. There is no cycle detection: a factory
// that transitively resolves its own name blocks forever on its own
// registration.
type Locator struct {
	mu       sync.Mutex
	services map[string]*registration
}

// NewLocator creates an empty locator.
func NewLocator() *Locator {
	return &Locator{services: make(map[string]*registration)}
}

// Register stores a factory under name. Re-registering a name
// overwrites the previous registration and discards any instance it
// had already produced.
func (l *Locator) Register(name string, factory Factory) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services[name] = &registration{factory: factory}
}

// Get returns the instance registered under name, invoking its
// factory on first lookup and caching the result for the process
// lifetime. A factory error is also cached: the factory is not
// retried.
func (l *Locator) Get(name string) (any, error) {
	l.mu.Lock()
	reg, ok := l.services[name]
	l.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrServiceNotFound, name)
	}

	reg.once.Do(func() {
		reg.value, reg.err = reg.factory(l)
	})
	if reg.err != nil {
		return nil, fmt.Errorf("construct %s: %w", name, reg.err)
	}
	return reg.value, nil
}

// Resolve looks up name and asserts the instance to T.
func Resolve[T any](l *Locator, name string) (T, error) {
	var zero T
	v, err := l.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("service %s has type %T, not %T", name, v, zero)
	}
	return typed, nil
}
