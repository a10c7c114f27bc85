package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoocca/parent-pay/internal/application"
)

func newPayCmd(app *app) *cobra.Command {
	var ids []int64

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay one or more receipts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(app)
			if err != nil {
				return err
			}

			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), application.MsgNothingToPay)
				return nil
			}

			var outcome application.PayOutcome
			pay := func(ctx context.Context) error {
				outcome = app.payments.PayReceipts(ctx, session.AccessToken, ids)
				return nil
			}

			if err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Submitting payments...", pay); err != nil {
				return err
			}

			if outcome.HasAuthFailure {
				return expireSession(app)
			}
			if outcome.FailedCount > 0 {
				return errors.New(application.PaymentOutcomeMessage(outcome))
			}

			fmt.Fprintln(cmd.OutOrStdout(), application.PaymentOutcomeMessage(outcome))
			return nil
		},
	}

	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "Receipt IDs to pay")
	_ = cmd.MarkFlagRequired("ids")

	return cmd
}
