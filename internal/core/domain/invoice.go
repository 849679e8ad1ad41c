package domain

import (
	"net/url"
	"strconv"
)

// Invoice statuses reported by the billing API.
const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusOpen  = "open"
	InvoiceStatusPaid  = "paid"
	InvoiceStatusVoid  = "void"
)

// Invoice is an invoice record as returned by the remote billing API.
type Invoice struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	Customer         string `json:"customer"`
	Status           string `json:"status"`
	AutoAdvance      bool   `json:"auto_advance"`
	AmountDue        int64  `json:"amount_due"`
	Currency         string `json:"currency"`
	HostedInvoiceURL string `json:"hosted_invoice_url"`
}

// InvoiceItem is a line item attached to a draft invoice.
type InvoiceItem struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Customer    string `json:"customer"`
	Invoice     string `json:"invoice"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// InvoiceParams are the fields sent when creating an invoice.
// AutoAdvance false keeps the invoice in draft until it is finalised
// explicitly.
type InvoiceParams struct {
	Customer    string
	AutoAdvance bool
}

// Encode shapes the params into a flat form body.
func (p InvoiceParams) Encode() url.Values {
	form := url.Values{}
	form.Set("customer", p.Customer)
	form.Set("auto_advance", strconv.FormatBool(p.AutoAdvance))
	return form
}

// InvoiceItemParams are the fields sent when creating an invoice item.
// Amount is in minor currency units (cents).
type InvoiceItemParams struct {
	Customer    string
	Amount      int64
	Currency    string
	Description string
	Invoice     string
}

// Encode shapes the params into a flat form body.
func (p InvoiceItemParams) Encode() url.Values {
	form := url.Values{}
	form.Set("customer", p.Customer)
	form.Set("amount", strconv.FormatInt(p.Amount, 10))
	form.Set("currency", p.Currency)
	if p.Description != "" {
		form.Set("description", p.Description)
	}
	if p.Invoice != "" {
		form.Set("invoice", p.Invoice)
	}
	return form
}

// InvoiceUpdateParams are the fields that may change on an existing
// invoice. All fields are optional; an empty update is allowed.
type InvoiceUpdateParams struct {
	Description string
	AutoAdvance *bool
}

// Encode shapes the params into a flat form body, omitting unset
// fields.
func (p InvoiceUpdateParams) Encode() url.Values {
	form := url.Values{}
	if p.Description != "" {
		form.Set("description", p.Description)
	}
	if p.AutoAdvance != nil {
		form.Set("auto_advance", strconv.FormatBool(*p.AutoAdvance))
	}
	return form
}

// InvoiceLink is the outcome of a completed order-invoice flow: the
// finalised invoice's ID and the hosted payment link sent to the
// customer.
type InvoiceLink struct {
	InvoiceID  string
	InvoiceURL string
}
