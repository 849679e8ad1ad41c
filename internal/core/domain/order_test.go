package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Widget", "Gadget"}, SplitList("Widget, Gadget"))
	assert.Equal(t, []string{"one"}, SplitList("one"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	// Empty slots survive the split; the sanitizers decide what to do
	// with them.
	assert.Equal(t, []string{"a", "", "b"}, SplitList("a,,b"))
}

func TestParseOrderItems_Strict(t *testing.T) {
	items, err := ParseOrderItems(
		[]string{"Widget", "Gadget"},
		[]string{"10.00", "2.50"},
		[]string{"W-1", "G-1"},
		SanitizeStrict,
	)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, OrderItem{Name: "Widget", Amount: 1000, SKU: "W-1"}, items[0])
	assert.Equal(t, OrderItem{Name: "Gadget", Amount: 250, SKU: "G-1"}, items[1])
}

func TestParseOrderItems_Strict_LengthMismatch(t *testing.T) {
	_, err := ParseOrderItems(
		[]string{"Widget", "Gadget"},
		[]string{"10.00"},
		[]string{"W-1", "G-1"},
		SanitizeStrict,
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "do not match")
}

func TestParseOrderItems_Strict_InvalidPrice(t *testing.T) {
	_, err := ParseOrderItems(
		[]string{"Widget"},
		[]string{"ten dollars"},
		[]string{"W-1"},
		SanitizeStrict,
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "invalid price at index 0")
}

func TestParseOrderItems_Padded_FillsDefaults(t *testing.T) {
	items, err := ParseOrderItems(
		[]string{"Widget", "Gadget", "Sprocket"},
		[]string{"10.00"},
		nil,
		SanitizePadded,
	)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, OrderItem{Name: "Widget", Amount: 1000, SKU: "NA"}, items[0])
	// Missing prices default to one unit of currency.
	assert.Equal(t, int64(100), items[1].Amount)
	assert.Equal(t, int64(100), items[2].Amount)
}

func TestParseOrderItems_Padded_ZeroPriceDefaults(t *testing.T) {
	items, err := ParseOrderItems(
		[]string{"Widget", "Gadget"},
		[]string{"10.00", "0"},
		[]string{"W-1", "G-1"},
		SanitizePadded,
	)

	require.NoError(t, err)
	assert.Equal(t, int64(1000), items[0].Amount)
	assert.Equal(t, int64(100), items[1].Amount)
}

func TestParseOrderItems_Padded_MissingNameAndSKU(t *testing.T) {
	items, err := ParseOrderItems(
		nil,
		[]string{"3.99"},
		nil,
		SanitizePadded,
	)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, OrderItem{Name: "No Name", Amount: 399, SKU: "NA"}, items[0])
}

func TestParseOrderItems_Padded_UnparsablePriceDefaults(t *testing.T) {
	items, err := ParseOrderItems(
		[]string{"Widget"},
		[]string{"ten"},
		[]string{"W-1"},
		SanitizePadded,
	)

	require.NoError(t, err)
	assert.Equal(t, int64(100), items[0].Amount)
}

func TestParseOrderItems_RoundsToMinorUnits(t *testing.T) {
	items, err := ParseOrderItems(
		[]string{"a", "b"},
		[]string{"19.995", "0.015"},
		[]string{"s1", "s2"},
		SanitizeStrict,
	)

	require.NoError(t, err)
	assert.Equal(t, int64(2000), items[0].Amount)
	assert.Equal(t, int64(2), items[1].Amount)
}

func TestParseOrderItems_UnknownMode(t *testing.T) {
	_, err := ParseOrderItems(nil, nil, nil, SanitizeMode("lenient"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestSanitizeMode_IsValid(t *testing.T) {
	assert.True(t, SanitizeStrict.IsValid())
	assert.True(t, SanitizePadded.IsValid())
	assert.False(t, SanitizeMode("").IsValid())
	assert.False(t, SanitizeMode("lenient").IsValid())
}
