package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawlog/pawlog/internal/handlers"
	"github.com/pawlog/pawlog/internal/models"
)

// NewChatCmd creates the chat command with send and history subcommands
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the pet care assistant",
		Long:  "Send a message to the assistant or print the conversation history.",
	}
	cmd.AddCommand(newChatSendCmd())
	cmd.AddCommand(newChatHistoryCmd())
	return cmd
}

func newChatSendCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message to the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			client := NewClient(apiURL)
			var exchange handlers.ChatExchangeResponse
			if err := client.Post("/api/chat", handlers.ChatMessageRequest{Message: message}, &exchange); err != nil {
				return err
			}

			fmt.Printf("You: %s\n", exchange.UserMessage.Text)
			fmt.Printf("Assistant: %s\n", exchange.AIMessage.Text)
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}

func newChatHistoryCmd() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(apiURL)

			var history []*models.ChatMessage
			if err := client.Get("/api/chat/history", &history); err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Println("No messages yet")
				return nil
			}

			for _, msg := range history {
				who := "You"
				if msg.Type == models.MessageAI {
					who = "Assistant"
				}
				fmt.Printf("[%s] %s: %s\n", msg.Timestamp.Local().Format("15:04"), who, msg.Text)
			}
			return nil
		},
	}

	addAPIURLFlag(cmd, &apiURL)
	return cmd
}
