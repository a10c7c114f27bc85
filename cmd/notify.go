package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoocca/parent-pay/internal/ports"
)

func newNotifyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Push notification helpers",
	}

	cmd.AddCommand(newNotifySendCmd(app), newNotifyRegisterCmd(app))

	return cmd
}

// notify send feeds a message through the dedup pipeline the way the push
// receiver would; useful for checking suppression behavior by hand.
func newNotifySendCmd(app *app) *cobra.Command {
	var (
		title     string
		body      string
		receiptID string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Simulate an inbound push message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			delivered := app.receiver.Receive(ports.PushMessage{
				Title:     title,
				Body:      body,
				ReceiptID: receiptID,
			})

			if !delivered {
				fmt.Fprintln(cmd.OutOrStdout(), "suppressed (duplicate within window)")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().StringVar(&receiptID, "receipt-id", "", "Raw receipt ID from the push payload")

	return cmd
}

func newNotifyRegisterCmd(app *app) *cobra.Command {
	var deviceToken string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a device push token for the logged-in parent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(app)
			if err != nil {
				return err
			}

			if err := app.pushTokens.RegisterToken(cmd.Context(), session.ParentID, deviceToken); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Push token registered.")
			return nil
		},
	}

	cmd.Flags().StringVar(&deviceToken, "device-token", "", "Device push token")
	_ = cmd.MarkFlagRequired("device-token")

	return cmd
}

// terminalNotifier prints notifications the way the mobile client would
// raise them.
type terminalNotifier struct{}

var _ ports.Notifier = terminalNotifier{}

func (terminalNotifier) Notify(title, body string, receiptID int64) {
	if receiptID > 0 {
		fmt.Printf("[%s] %s (receipt %d)\n", title, body, receiptID)
		return
	}
	fmt.Printf("[%s] %s\n", title, body)
}
