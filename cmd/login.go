package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/qoocca/parent-pay/internal/application"
	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/logging"
)

func newLoginCmd(app *app) *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a parent phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.auth.Login(cmd.Context(), phone)
			if err != nil {
				if errors.Is(err, application.ErrPhoneRequired) {
					return errors.New(application.MsgPhoneRequired)
				}
				return errors.New(application.LoginFailureMessage(domain.AsAppError(err)))
			}

			if err := app.creds.SaveSession(result.ParentID, result.AccessToken); err != nil {
				return fmt.Errorf("save session: %w", err)
			}

			log.Debug().
				Int64("parentId", result.ParentID).
				Str("token", logging.MaskToken(result.AccessToken)).
				Msg("session saved")

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", result.ParentName)
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Parent phone number")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.creds.Logout(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}
