package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Run the order-fulfilment pipeline",
	Long: `Runs the full order-fulfilment pipeline for one order:

  1. Find the billing customer by email, creating it when absent.
  2. Create a draft invoice with one line item per ordered product.
  3. Finalise the invoice.
  4. Text the customer the hosted payment link.

Item names, prices and SKUs are parallel comma-separated lists, as
they arrive from the order sheet.`,
	RunE: runOrder,
}

// Order command flags.
var (
	orderEmail   string
	orderName    string
	orderPhone   string
	orderAddress string
	orderItems   string
	orderPrices  string
	orderSKUs    string
)

func init() {
	orderCmd.Flags().StringVarP(&orderEmail, "email", "e", "", "Customer email (required)")
	orderCmd.Flags().StringVarP(&orderName, "name", "n", "", "Customer name")
	orderCmd.Flags().StringVarP(&orderPhone, "phone", "p", "", "Customer phone number (required)")
	orderCmd.Flags().StringVarP(&orderAddress, "address", "a", "", `Address as "line1, city, state zip"`)
	orderCmd.Flags().StringVar(&orderItems, "items", "", "Comma-separated item names")
	orderCmd.Flags().StringVar(&orderPrices, "prices", "", "Comma-separated item prices in major units")
	orderCmd.Flags().StringVar(&orderSKUs, "skus", "", "Comma-separated item SKUs")

	rootCmd.AddCommand(orderCmd)
}

func runOrder(cmd *cobra.Command, _ []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	result, err := orderService.HandleOrder(context.Background(), domain.OrderRequest{
		Email:   orderEmail,
		Name:    orderName,
		Phone:   orderPhone,
		Address: orderAddress,
		Names:   orderItems,
		Prices:  orderPrices,
		SKUs:    orderSKUs,
	})
	if err != nil {
		return fmt.Errorf("order failed: %w", err)
	}

	cmd.Println("Order complete")
	cmd.Printf("  Customer: %s\n", result.CustomerID)
	cmd.Printf("  Invoice:  %s\n", result.Invoice.InvoiceID)
	cmd.Printf("  Link:     %s\n", result.Invoice.InvoiceURL)
	cmd.Printf("  Message:  %s\n", result.MessageSID)
	return nil
}
