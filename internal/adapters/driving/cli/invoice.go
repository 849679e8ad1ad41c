package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Manage invoices",
	Long:  `Create, finalise, inspect and delete invoices on the remote billing API.`,
}

var invoiceCreateCmd = &cobra.Command{
	Use:   "create [customer-id]",
	Short: "Create a draft invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceCreate,
}

var invoiceItemCmd = &cobra.Command{
	Use:   "item [customer-id]",
	Short: "Add a line item",
	Long:  `Adds a line item for the customer's next draft invoice, or for a specific invoice via --invoice.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceItem,
}

var invoiceFinalizeCmd = &cobra.Command{
	Use:   "finalize [invoice-id]",
	Short: "Finalise a draft invoice",
	Long:  `Transitions a draft invoice to open and prints its hosted payment link.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceFinalize,
}

var invoiceGetCmd = &cobra.Command{
	Use:   "get [invoice-id]",
	Short: "Show an invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceGet,
}

var invoiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Args:  cobra.NoArgs,
	RunE:  runInvoiceList,
}

var invoiceDeleteCmd = &cobra.Command{
	Use:   "delete [invoice-id]",
	Short: "Delete a draft invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvoiceDelete,
}

// Invoice command flags.
var (
	itemAmount      int64
	itemCurrency    string
	itemDescription string
	itemInvoice     string
	listCustomer    string
	listStatus      string
	listLimit       int
)

func init() {
	invoiceItemCmd.Flags().Int64VarP(&itemAmount, "amount", "a", 0, "Amount in minor currency units (cents)")
	invoiceItemCmd.Flags().StringVarP(&itemCurrency, "currency", "c", "usd", "Three-letter currency code")
	invoiceItemCmd.Flags().StringVarP(&itemDescription, "description", "d", "", "Line item description")
	invoiceItemCmd.Flags().StringVarP(&itemInvoice, "invoice", "i", "", "Invoice to attach the item to")

	invoiceListCmd.Flags().StringVarP(&listCustomer, "customer", "c", "", "Filter by customer ID")
	invoiceListCmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (draft, open, paid, void)")
	invoiceListCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "Maximum number of invoices")

	invoiceCmd.AddCommand(invoiceCreateCmd)
	invoiceCmd.AddCommand(invoiceItemCmd)
	invoiceCmd.AddCommand(invoiceFinalizeCmd)
	invoiceCmd.AddCommand(invoiceGetCmd)
	invoiceCmd.AddCommand(invoiceListCmd)
	invoiceCmd.AddCommand(invoiceDeleteCmd)
	rootCmd.AddCommand(invoiceCmd)
}

func runInvoiceCreate(cmd *cobra.Command, args []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	invoice, err := invoiceService.Create(context.Background(), domain.InvoiceParams{
		Customer: args[0],
	})
	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	cmd.Printf("Created draft invoice %s for %s\n", invoice.ID, invoice.Customer)
	return nil
}

func runInvoiceItem(cmd *cobra.Command, args []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	item, err := invoiceService.CreateItem(context.Background(), domain.InvoiceItemParams{
		Customer:    args[0],
		Amount:      itemAmount,
		Currency:    itemCurrency,
		Description: itemDescription,
		Invoice:     itemInvoice,
	})
	if err != nil {
		return fmt.Errorf("failed to create invoice item: %w", err)
	}

	cmd.Printf("Created invoice item %s (%d %s)\n", item.ID, item.Amount, item.Currency)
	return nil
}

func runInvoiceFinalize(cmd *cobra.Command, args []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	invoice, err := invoiceService.Finalize(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to finalize invoice: %w", err)
	}

	cmd.Printf("Finalized invoice %s\n", invoice.ID)
	if invoice.HostedInvoiceURL != "" {
		cmd.Printf("Payment link: %s\n", invoice.HostedInvoiceURL)
	}
	return nil
}

func runInvoiceGet(cmd *cobra.Command, args []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	invoice, err := invoiceService.GetByID(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get invoice: %w", err)
	}

	printInvoice(cmd, invoice)
	return nil
}

func runInvoiceList(cmd *cobra.Command, _ []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	query := url.Values{}
	if listCustomer != "" {
		query.Set("customer", listCustomer)
	}
	if listStatus != "" {
		query.Set("status", listStatus)
	}
	query.Set("limit", strconv.Itoa(listLimit))

	invoices, err := invoiceService.List(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list invoices: %w", err)
	}

	if len(invoices.Data) == 0 {
		cmd.Println("No invoices found")
		return nil
	}

	for i := range invoices.Data {
		printInvoice(cmd, &invoices.Data[i])
	}
	cmd.Printf("Total: %d invoices\n", len(invoices.Data))
	return nil
}

func runInvoiceDelete(cmd *cobra.Command, args []string) error {
	if invoiceService == nil {
		return errors.New("invoice service not configured")
	}

	if err := invoiceService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	cmd.Printf("Deleted invoice %s\n", args[0])
	return nil
}

func printInvoice(cmd *cobra.Command, inv *domain.Invoice) {
	cmd.Printf("Invoice: %s\n", inv.ID)
	cmd.Printf("  Customer: %s\n", inv.Customer)
	cmd.Printf("  Status:   %s\n", inv.Status)
	cmd.Printf("  Due:      %d %s\n", inv.AmountDue, inv.Currency)
	if inv.HostedInvoiceURL != "" {
		cmd.Printf("  Link:     %s\n", inv.HostedInvoiceURL)
	}
	cmd.Println()
}
