package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// maxDescriptionLength is the longest description the billing API
// accepts on a customer record. Longer values are truncated, not
// rejected.
const maxDescriptionLength = 350

// Customer is a billing-customer record as returned by the remote
// billing API. The ID is issued remotely; orderflow never persists
// customers itself.
type Customer struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

// Address is a postal address attached to a customer. The billing API
// has no nested objects in form bodies; Encode flattens it into
// address[...] keys.
type Address struct {
	Line1      string
	City       string
	State      string
	PostalCode string
}

// ParseAddress parses a single-line "line1, city, state zip" address
// into its parts. Returns ErrInvalidInput when a part is missing.
func ParseAddress(s string) (*Address, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return nil, errInvalidAddress(s)
	}
	statePart := strings.Fields(strings.TrimSpace(parts[2]))
	if len(statePart) < 2 {
		return nil, errInvalidAddress(s)
	}
	return &Address{
		Line1:      strings.TrimSpace(parts[0]),
		City:       strings.TrimSpace(parts[1]),
		State:      statePart[0],
		PostalCode: statePart[1],
	}, nil
}

func errInvalidAddress(s string) error {
	return fmt.Errorf("%w: address must be \"line1, city, state zip\": %q", ErrInvalidInput, s)
}

// CustomerParams are the fields sent when creating a customer.
type CustomerParams struct {
	Email       string
	Name        string
	Phone       string
	Description string
	Address     *Address
}

// Encode shapes the params into a flat form body. A nested Address is
// flattened into address[line1|city|state|postal_code] keys; no
// "address" key is ever sent. Description is truncated to the limit
// the billing API enforces.
func (p CustomerParams) Encode() url.Values {
	form := url.Values{}
	form.Set("email", p.Email)
	if p.Name != "" {
		form.Set("name", p.Name)
	}
	if p.Phone != "" {
		form.Set("phone", p.Phone)
	}
	if p.Description != "" {
		desc := p.Description
		if len(desc) > maxDescriptionLength {
			desc = desc[:maxDescriptionLength]
		}
		form.Set("description", desc)
	}
	if p.Address != nil {
		form.Set("address[line1]", p.Address.Line1)
		form.Set("address[city]", p.Address.City)
		form.Set("address[state]", p.Address.State)
		form.Set("address[postal_code]", p.Address.PostalCode)
	}
	return form
}
