// Package domain defines the core business entities for orderflow.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Customer: A billing-customer record on the remote billing API
//   - Invoice / InvoiceItem: Draft and finalised invoices with line items
//   - Message: An outbound text message on the remote messaging API
//   - OrderItem: A sanitised purchased item in minor currency units
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
