package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Defaults applied by the padded sanitize mode when an order field is
// missing or empty.
const (
	DefaultItemName  = "No Name"
	DefaultItemSKU   = "NA"
	defaultItemPrice = 1.00
)

// minorUnitsPerUnit converts major currency units to the smallest
// unit (cents) the billing API transmits amounts in.
const minorUnitsPerUnit = 100

// OrderItem is a purchased item derived from raw delimited input.
// Amount is in minor currency units. Items are consumed once when
// building invoice line items and never stored.
type OrderItem struct {
	Name   string
	Amount int64
	SKU    string
}

// OrderRequest is the raw input to the order-fulfilment pipeline:
// customer contact details plus parallel comma-separated item lists
// as they arrive from the order sheet.
type OrderRequest struct {
	Email   string
	Name    string
	Phone   string
	Address string
	Names   string
	Prices  string
	SKUs    string
}

// OrderResult is the outcome of a completed order-fulfilment run.
type OrderResult struct {
	CustomerID string
	Invoice    InvoiceLink
	MessageSID string
}

// SanitizeMode selects how ParseOrderItems treats ragged or invalid
// input. The two policies existed side by side in earlier versions of
// this flow and callers relied on both, so the choice is explicit
// rather than unified.
type SanitizeMode string

const (
	// SanitizeStrict rejects input where the name, price and SKU lists
	// differ in length or a price does not parse.
	SanitizeStrict SanitizeMode = "strict"

	// SanitizePadded pads short lists with defaults and substitutes
	// one unit of currency for missing or zero prices.
	SanitizePadded SanitizeMode = "padded"
)

// IsValid returns true if the sanitize mode is recognised.
func (m SanitizeMode) IsValid() bool {
	return m == SanitizeStrict || m == SanitizePadded
}

// String returns the string representation.
func (m SanitizeMode) String() string {
	return string(m)
}

// SplitList splits a comma-separated string into trimmed elements.
// An empty input yields nil rather than a single empty element.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// ParseOrderItems builds order items from parallel lists of names,
// prices and SKUs. Prices are parsed as major units and converted to
// minor units by rounding price*100.
//
// In strict mode the three lists must have equal length and every
// price must parse; any violation returns ErrInvalidInput. In padded
// mode the longest list sets the item count, missing names and SKUs
// get defaults, and a missing, unparsable or zero price falls back to
// one unit of currency (100 minor units).
func ParseOrderItems(names, prices, skus []string, mode SanitizeMode) ([]OrderItem, error) {
	switch mode {
	case SanitizeStrict:
		return parseStrict(names, prices, skus)
	case SanitizePadded:
		return parsePadded(names, prices, skus), nil
	default:
		return nil, fmt.Errorf("%w: unknown sanitize mode: %q", ErrInvalidInput, mode)
	}
}

func parseStrict(names, prices, skus []string) ([]OrderItem, error) {
	if len(names) != len(prices) || len(names) != len(skus) {
		return nil, fmt.Errorf("%w: the number of item names, prices, and SKUs do not match",
			ErrInvalidInput)
	}
	items := make([]OrderItem, 0, len(names))
	for i := range names {
		price, err := strconv.ParseFloat(strings.TrimSpace(prices[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid price at index %d: %q", ErrInvalidInput, i, prices[i])
		}
		items = append(items, OrderItem{
			Name:   strings.TrimSpace(names[i]),
			Amount: toMinorUnits(price),
			SKU:    strings.TrimSpace(skus[i]),
		})
	}
	return items, nil
}

func parsePadded(names, prices, skus []string) []OrderItem {
	count := max(len(names), max(len(prices), len(skus)))
	items := make([]OrderItem, 0, count)
	for i := 0; i < count; i++ {
		name := elementOr(names, i, DefaultItemName)
		sku := elementOr(skus, i, DefaultItemSKU)

		price := defaultItemPrice
		if raw := elementOr(prices, i, ""); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed > 0 {
				price = parsed
			}
		}

		items = append(items, OrderItem{
			Name:   name,
			Amount: toMinorUnits(price),
			SKU:    sku,
		})
	}
	return items
}

func elementOr(list []string, i int, fallback string) string {
	if i >= len(list) {
		return fallback
	}
	if v := strings.TrimSpace(list[i]); v != "" {
		return v
	}
	return fallback
}

func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * minorUnitsPerUnit))
}
