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

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Send and inspect text messages",
	Long:  `Send outbound text messages through the remote messaging API.`,
}

var messageSendCmd = &cobra.Command{
	Use:   "send [to] [body]",
	Short: "Send a message",
	Long:  `Sends body to the given phone number. The from-number comes from settings unless --from is set.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMessageSend,
}

var messageGetCmd = &cobra.Command{
	Use:   "get [message-sid]",
	Short: "Show a message",
	Args:  cobra.ExactArgs(1),
	RunE:  runMessageGet,
}

var messageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sent messages",
	Args:  cobra.NoArgs,
	RunE:  runMessageList,
}

// Message command flags.
var (
	messageFrom      string
	messageListTo    string
	messageListLimit int
)

func init() {
	messageSendCmd.Flags().StringVarP(&messageFrom, "from", "f", "", "Sending phone number (default from settings)")

	messageListCmd.Flags().StringVarP(&messageListTo, "to", "t", "", "Filter by recipient phone number")
	messageListCmd.Flags().IntVarP(&messageListLimit, "limit", "n", 10, "Maximum number of messages")

	messageCmd.AddCommand(messageSendCmd)
	messageCmd.AddCommand(messageGetCmd)
	messageCmd.AddCommand(messageListCmd)
	rootCmd.AddCommand(messageCmd)
}

func runMessageSend(cmd *cobra.Command, args []string) error {
	if messageService == nil {
		return errors.New("message service not configured")
	}

	to, body := args[0], args[1]
	ctx := context.Background()

	var message *domain.Message
	var err error
	if messageFrom != "" {
		message, err = messageService.Send(ctx, domain.MessageParams{
			To:   to,
			From: messageFrom,
			Body: body,
		})
	} else {
		message, err = messageService.Create(ctx, to, body, nil)
	}
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	cmd.Printf("Sent message %s to %s\n", message.SID, message.To)
	return nil
}

func runMessageGet(cmd *cobra.Command, args []string) error {
	if messageService == nil {
		return errors.New("message service not configured")
	}

	message, err := messageService.GetBySID(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get message: %w", err)
	}

	printMessage(cmd, message)
	return nil
}

func runMessageList(cmd *cobra.Command, _ []string) error {
	if messageService == nil {
		return errors.New("message service not configured")
	}

	query := url.Values{}
	if messageListTo != "" {
		query.Set("To", messageListTo)
	}
	query.Set("PageSize", strconv.Itoa(messageListLimit))

	messages, err := messageService.List(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(messages.Data) == 0 {
		cmd.Println("No messages found")
		return nil
	}

	for i := range messages.Data {
		printMessage(cmd, &messages.Data[i])
	}
	cmd.Printf("Total: %d messages\n", len(messages.Data))
	return nil
}

func printMessage(cmd *cobra.Command, m *domain.Message) {
	cmd.Printf("Message: %s\n", m.SID)
	cmd.Printf("  To:     %s\n", m.To)
	cmd.Printf("  From:   %s\n", m.From)
	cmd.Printf("  Status: %s\n", m.Status)
	cmd.Printf("  Body:   %s\n", m.Body)
	cmd.Println()
}
