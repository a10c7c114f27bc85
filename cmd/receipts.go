package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	renderreceipts "github.com/qoocca/parent-pay/internal/adapters/render/receipts"
	"github.com/qoocca/parent-pay/internal/application"
	"github.com/qoocca/parent-pay/internal/domain"
)

func newReceiptsCmd(app *app) *cobra.Command {
	var (
		ids     []int64
		details bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "receipts",
		Short: "List pending receipts, optionally fetching full details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(app)
			if err != nil {
				return err
			}

			if !details && len(ids) == 0 {
				return runReceiptList(cmd, app, session, asJSON)
			}
			return runReceiptDetails(cmd, app, session, ids, asJSON)
		},
	}

	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "Receipt IDs to fetch details for (default: all pending)")
	cmd.Flags().BoolVar(&details, "details", false, "Fetch full details for every pending receipt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runReceiptList(cmd *cobra.Command, app *app, session domain.Session, asJSON bool) error {
	receipts, err := app.receipts.ListReceipts(cmd.Context(), session.AccessToken)
	if err != nil {
		appErr := domain.AsAppError(err)
		if appErr.AuthFailure() {
			return expireSession(app)
		}
		return errors.New(application.ReceiptListFailureMessage(appErr))
	}

	return writeReceiptsOutput(cmd, app, receipts, 0, false, asJSON)
}

func runReceiptDetails(cmd *cobra.Command, app *app, session domain.Session, ids []int64, asJSON bool) error {
	if len(ids) == 0 {
		receipts, err := app.receipts.ListReceipts(cmd.Context(), session.AccessToken)
		if err != nil {
			appErr := domain.AsAppError(err)
			if appErr.AuthFailure() {
				return expireSession(app)
			}
			return errors.New(application.ReceiptListFailureMessage(appErr))
		}
		for _, receipt := range receipts {
			ids = append(ids, receipt.ReceiptID)
		}
	}

	var outcome application.ReceiptDetailsOutcome
	fetch := func(ctx context.Context) error {
		outcome = app.receipts.GetReceiptDetails(ctx, session.AccessToken, ids)
		return nil
	}

	if asJSON {
		if err := fetch(cmd.Context()); err != nil {
			return err
		}
	} else {
		if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching receipt details...", fetch); err != nil {
			return err
		}
	}

	if outcome.HasAuthFailure {
		return expireSession(app)
	}

	return writeReceiptsOutput(cmd, app, outcome.Results, outcome.FailedCount, outcome.HasAuthFailure, asJSON)
}

func writeReceiptsOutput(cmd *cobra.Command, app *app, receipts []domain.Receipt, failedCount int, authFailure, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"receipts":    receipts,
			"failedCount": failedCount,
		})
	}

	rendered := app.receiptRenderer(receipts, renderreceipts.RenderOptions{})
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	if summary := renderreceipts.RenderFailures(failedCount, authFailure); summary != "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), summary); err != nil {
			return err
		}
	}

	return nil
}

// expireSession clears stored credentials after a batch-level auth failure
// and surfaces the standard re-login message.
func expireSession(app *app) error {
	if err := app.creds.Logout(); err != nil {
		return fmt.Errorf("clear expired session: %w", err)
	}

	return errors.New(application.MsgAuthFailed)
}
