package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qoocca/parent-pay/internal/application"
	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/logging"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.creds.Session()
			if err != nil {
				return fmt.Errorf("read session: %w", err)
			}

			if asJSON {
				payload := map[string]any{
					"loggedIn":      session != nil,
					"secureBackend": app.creds.SecureActive(),
				}
				if session != nil {
					payload["parentId"] = session.ParentID
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			}

			if session == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in (parent %d, token %s).\n",
				session.ParentID, logging.MaskToken(session.AccessToken))
			if !app.creds.SecureActive() {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: session is stored in the legacy unencrypted store.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// requireSession loads the stored session or fails with the standard
// "log in again" message.
func requireSession(app *app) (domain.Session, error) {
	session, err := app.creds.Session()
	if err != nil {
		return domain.Session{}, fmt.Errorf("read session: %w", err)
	}
	if session == nil {
		return domain.Session{}, errors.New(application.MsgTokenRequired)
	}

	return *session, nil
}
