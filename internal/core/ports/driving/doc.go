// Package driving defines the interfaces through which the outside
// world drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// CLI commands and orchestration scripts call them; core services
// implement them.
//
//   - CustomerService: billing-customer lookup and creation
//   - InvoiceService: invoice and line-item lifecycle
//   - MessageService: outbound text messages
//   - OrderService: the order-fulfilment pipeline composing the above
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
