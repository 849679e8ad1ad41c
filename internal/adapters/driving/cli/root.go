// Package cli implements the orderflow command-line interface. It is
// a driving adapter: commands translate flags and arguments into
// calls on the core service interfaces and print the results.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orderflow/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orderflow/internal/adapters/driven/rest"
	"github.com/custodia-labs/orderflow/internal/core/domain"
	"github.com/custodia-labs/orderflow/internal/core/ports/driven"
	"github.com/custodia-labs/orderflow/internal/core/ports/driving"
	"github.com/custodia-labs/orderflow/internal/core/services"
	"github.com/custodia-labs/orderflow/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services resolved during startup. Tests swap these for mocks.
var (
	configStore     driven.ConfigStore
	customerService driving.CustomerService
	invoiceService  driving.InvoiceService
	messageService  driving.MessageService
	orderService    driving.OrderService
)

// Persistent flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "orderflow",
	Short: "Order fulfilment over remote billing and messaging APIs",
	Long: `Orderflow turns a raw order into a finalised invoice and a text
message carrying the payment link.

It finds or creates the billing customer, creates a draft invoice with
one line item per ordered product, finalises the invoice, and texts
the hosted payment link to the customer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if isSetupExempt(cmd) || servicesReady() {
			return nil
		}
		return initServices()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.orderflow)")
}

// isSetupExempt reports whether cmd works without configured remote
// credentials. Settings and version must run before setup is done.
func isSetupExempt(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "version", "help", "completion":
			return true
		}
	}
	return false
}

// servicesReady reports whether service wiring already ran, either
// through initServices or through direct injection.
func servicesReady() bool {
	return customerService != nil || invoiceService != nil ||
		messageService != nil || orderService != nil
}

// initServices loads configuration, builds the service locator and
// resolves the services the commands call. Resolution is lazy per
// service: a missing billing credential does not stop a message-only
// command.
func initServices() error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	configStore = store

	locator := BuildLocator(store.Settings())

	customerService, err = services.Resolve[driving.CustomerService](locator, services.NameCustomers)
	if err != nil {
		logger.Debug("customer service unavailable: %v", err)
	}
	invoiceService, err = services.Resolve[driving.InvoiceService](locator, services.NameInvoices)
	if err != nil {
		logger.Debug("invoice service unavailable: %v", err)
	}
	messageService, err = services.Resolve[driving.MessageService](locator, services.NameMessages)
	if err != nil {
		logger.Debug("message service unavailable: %v", err)
	}
	orderService, err = services.Resolve[driving.OrderService](locator, services.NameOrders)
	if err != nil {
		logger.Debug("order service unavailable: %v", err)
	}

	return nil
}

// BuildLocator registers factories for every core service against the
// given settings. Factories run on first lookup, so a client for an
// unconfigured backend is only an error when something resolves it.
func BuildLocator(settings domain.Settings) *services.Locator {
	settings = settings.Normalised()
	locator := services.NewLocator()

	locator.Register(services.NameBillingClient, func(_ *services.Locator) (any, error) {
		if !settings.Billing.IsConfigured() {
			return nil, fmt.Errorf("%w: billing API key and base URL", domain.ErrNotConfigured)
		}
		return rest.NewClient(rest.Config{
			KeySID:  settings.Billing.APIKey,
			BaseURL: settings.Billing.BaseURL,
			Timeout: settings.HTTPTimeout,
		})
	})

	locator.Register(services.NameMessagingClient, func(_ *services.Locator) (any, error) {
		if !settings.Messaging.IsConfigured() {
			return nil, fmt.Errorf("%w: messaging key SID, secret, base URL and from-number", domain.ErrNotConfigured)
		}
		return rest.NewClient(rest.Config{
			KeySID:    settings.Messaging.KeySID,
			KeySecret: settings.Messaging.KeySecret,
			BaseURL:   settings.Messaging.BaseURL,
			Timeout:   settings.HTTPTimeout,
		})
	})

	locator.Register(services.NameCustomers, func(l *services.Locator) (any, error) {
		client, err := services.Resolve[driven.RESTClient](l, services.NameBillingClient)
		if err != nil {
			return nil, err
		}
		return services.NewCustomerService(client), nil
	})

	locator.Register(services.NameInvoices, func(l *services.Locator) (any, error) {
		client, err := services.Resolve[driven.RESTClient](l, services.NameBillingClient)
		if err != nil {
			return nil, err
		}
		return services.NewInvoiceService(client), nil
	})

	locator.Register(services.NameMessages, func(l *services.Locator) (any, error) {
		client, err := services.Resolve[driven.RESTClient](l, services.NameMessagingClient)
		if err != nil {
			return nil, err
		}
		return services.NewMessageService(client, settings.Messaging.FromNumber), nil
	})

	locator.Register(services.NameOrders, func(l *services.Locator) (any, error) {
		customers, err := services.Resolve[driving.CustomerService](l, services.NameCustomers)
		if err != nil {
			return nil, err
		}
		invoices, err := services.Resolve[driving.InvoiceService](l, services.NameInvoices)
		if err != nil {
			return nil, err
		}
		messages, err := services.Resolve[driving.MessageService](l, services.NameMessages)
		if err != nil {
			return nil, err
		}
		return services.NewOrderService(customers, invoices, messages, settings.SanitizeMode), nil
	})

	return locator
}
