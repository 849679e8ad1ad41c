package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/orderflow/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orderflow/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure billing and messaging credentials and other options.

Use subcommands to set individual keys or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings key",
	Long: `Set a single settings key.

Available keys:
  billing.api_key         Billing API secret key
  billing.base_url        Billing API base URL
  messaging.account_sid   Messaging account SID
  messaging.key_sid       Messaging API key SID
  messaging.key_secret    Messaging API key secret
  messaging.base_url      Messaging API base URL (including account path)
  messaging.from_number   Sending phone number
  http.timeout_seconds    Remote call timeout in seconds
  order.sanitize_mode     Order input handling: strict or padded`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure billing and messaging step by step.`,
	RunE:  runSettingsWizard,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

// loadSettingsStore opens the config store for the settings commands,
// which run before the regular service wiring.
func loadSettingsStore() error {
	if configStore != nil {
		return nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	configStore = store
	return nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := loadSettingsStore(); err != nil {
		return err
	}

	settings := configStore.Settings().Normalised()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Billing]")
	cmd.Printf("  API Key:  %s\n", maskSecret(settings.Billing.APIKey))
	cmd.Printf("  Base URL: %s\n", valueOrUnset(settings.Billing.BaseURL))
	cmd.Printf("  Status:   %s\n", configuredStatus(settings.Billing.IsConfigured()))
	cmd.Println()

	cmd.Println("[Messaging]")
	cmd.Printf("  Account SID: %s\n", valueOrUnset(settings.Messaging.AccountSID))
	cmd.Printf("  Key SID:     %s\n", valueOrUnset(settings.Messaging.KeySID))
	cmd.Printf("  Key Secret:  %s\n", maskSecret(settings.Messaging.KeySecret))
	cmd.Printf("  Base URL:    %s\n", valueOrUnset(settings.Messaging.BaseURL))
	cmd.Printf("  From Number: %s\n", valueOrUnset(settings.Messaging.FromNumber))
	cmd.Printf("  Status:      %s\n", configuredStatus(settings.Messaging.IsConfigured()))
	cmd.Println()

	cmd.Println("[Orders]")
	cmd.Printf("  Sanitize Mode: %s\n", settings.SanitizeMode)
	cmd.Printf("  HTTP Timeout:  %s\n", settings.HTTPTimeout)
	cmd.Println()

	if !settings.Billing.IsConfigured() || !settings.Messaging.IsConfigured() {
		cmd.Println("Run 'orderflow settings wizard' to complete configuration.")
	} else {
		cmd.Println("Configuration is complete.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := loadSettingsStore(); err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case file.KeyBillingAPIKey, file.KeyBillingBaseURL,
		file.KeyMessagingAccountSID, file.KeyMessagingKeySID,
		file.KeyMessagingKeySecret, file.KeyMessagingBaseURL,
		file.KeyMessagingFromNumber:
		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	case file.KeyHTTPTimeoutSeconds:
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		if err := configStore.Set(key, seconds); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	case file.KeyOrderSanitizeMode:
		if !domain.SanitizeMode(value).IsValid() {
			return fmt.Errorf("%s must be %q or %q", key, domain.SanitizeStrict, domain.SanitizePadded)
		}
		if err := configStore.Set(key, value); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if err := loadSettingsStore(); err != nil {
		return err
	}

	cmd.Println("Orderflow Settings Wizard")
	cmd.Println("=========================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Step 1: Billing API")
	cmd.Println("-------------------")
	cmd.Print("Billing API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey != "" {
		if err := configStore.Set(file.KeyBillingAPIKey, apiKey); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	}
	if err := promptSet(cmd, reader, "Billing base URL", file.KeyBillingBaseURL); err != nil {
		return err
	}
	cmd.Println()

	cmd.Println("Step 2: Messaging API")
	cmd.Println("---------------------")
	if err := promptSet(cmd, reader, "Messaging account SID", file.KeyMessagingAccountSID); err != nil {
		return err
	}
	if err := promptSet(cmd, reader, "Messaging key SID", file.KeyMessagingKeySID); err != nil {
		return err
	}
	cmd.Print("Messaging key secret: ")
	keySecret := readPassword()
	cmd.Println()
	if keySecret != "" {
		if err := configStore.Set(file.KeyMessagingKeySecret, keySecret); err != nil {
			return fmt.Errorf("failed to save setting: %w", err)
		}
	}
	if err := promptSet(cmd, reader, "Messaging base URL", file.KeyMessagingBaseURL); err != nil {
		return err
	}
	if err := promptSet(cmd, reader, "Sending phone number", file.KeyMessagingFromNumber); err != nil {
		return err
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	settings := configStore.Settings()
	if !settings.Billing.IsConfigured() || !settings.Messaging.IsConfigured() {
		cmd.Println("Warning: some settings are still missing. Run 'orderflow settings show' to review.")
	} else {
		cmd.Println("All settings are saved.")
	}

	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if err := loadSettingsStore(); err != nil {
		return err
	}
	cmd.Println(configStore.Path())
	return nil
}

// promptSet asks for one value, keeping the existing one on empty
// input.
func promptSet(cmd *cobra.Command, reader *bufio.Reader, label, key string) error {
	current := configStore.GetString(key)
	if current != "" {
		cmd.Printf("%s [%s]: ", label, current)
	} else {
		cmd.Printf("%s: ", label)
	}
	input := readLine(reader)
	if input == "" {
		return nil
	}
	if err := configStore.Set(key, input); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func valueOrUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
