package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orderflow/internal/core/domain"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage billing customers",
	Long:  `Look up and create customer records on the remote billing API.`,
}

var customerGetCmd = &cobra.Command{
	Use:   "get [email]",
	Short: "Find customers by email",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerGet,
}

var customerCreateCmd = &cobra.Command{
	Use:   "create [email]",
	Short: "Create a customer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerCreate,
}

var customerEnsureCmd = &cobra.Command{
	Use:   "ensure [email]",
	Short: "Find a customer by email, creating it when absent",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerEnsure,
}

// Flags shared by customer create and ensure.
var (
	customerName    string
	customerPhone   string
	customerAddress string
)

func init() {
	for _, cmd := range []*cobra.Command{customerCreateCmd, customerEnsureCmd} {
		cmd.Flags().StringVarP(&customerName, "name", "n", "", "Customer name")
		cmd.Flags().StringVarP(&customerPhone, "phone", "p", "", "Customer phone number")
		cmd.Flags().StringVarP(&customerAddress, "address", "a", "", `Address as "line1, city, state zip"`)
	}

	customerCmd.AddCommand(customerGetCmd)
	customerCmd.AddCommand(customerCreateCmd)
	customerCmd.AddCommand(customerEnsureCmd)
	rootCmd.AddCommand(customerCmd)
}

func runCustomerGet(cmd *cobra.Command, args []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}

	email := args[0]
	customers, err := customerService.GetByEmail(context.Background(), email)
	if err != nil {
		return fmt.Errorf("failed to get customers: %w", err)
	}

	if len(customers.Data) == 0 {
		cmd.Printf("No customers found for %s\n", email)
		return nil
	}

	for i := range customers.Data {
		printCustomer(cmd, &customers.Data[i])
	}
	return nil
}

func runCustomerCreate(cmd *cobra.Command, args []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}

	params, err := customerParamsFromFlags(args[0])
	if err != nil {
		return err
	}

	customer, err := customerService.Create(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	cmd.Printf("Created customer %s\n", customer.ID)
	printCustomer(cmd, customer)
	return nil
}

func runCustomerEnsure(cmd *cobra.Command, args []string) error {
	if customerService == nil {
		return errors.New("customer service not configured")
	}

	email := args[0]
	params, err := customerParamsFromFlags(email)
	if err != nil {
		return err
	}

	customer, err := customerService.GetOrCreateByEmail(context.Background(), email, params)
	if err != nil {
		return fmt.Errorf("failed to find or create customer: %w", err)
	}

	printCustomer(cmd, customer)
	return nil
}

func customerParamsFromFlags(email string) (domain.CustomerParams, error) {
	params := domain.CustomerParams{
		Email: email,
		Name:  customerName,
		Phone: customerPhone,
	}
	if customerAddress != "" {
		address, err := domain.ParseAddress(customerAddress)
		if err != nil {
			return domain.CustomerParams{}, err
		}
		params.Address = address
	}
	return params, nil
}

func printCustomer(cmd *cobra.Command, c *domain.Customer) {
	cmd.Printf("Customer: %s\n", c.ID)
	cmd.Printf("  Email: %s\n", c.Email)
	if c.Name != "" {
		cmd.Printf("  Name:  %s\n", c.Name)
	}
	if c.Phone != "" {
		cmd.Printf("  Phone: %s\n", c.Phone)
	}
	cmd.Println()
}
