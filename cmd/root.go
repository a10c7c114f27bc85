package cmd

import (
	"github.com/spf13/cobra"

	"github.com/qoocca/parent-pay/internal/logging"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "parentpay",
		Short:         "Parent payments CLI: log in, list receipts, and pay them",
		Long:          "parentpay authenticates a parent against the payments backend, lists pending receipts, fetches receipt details, and submits payments in bulk.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		logging.Setup(cmd.ErrOrStderr(), verbose)
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newReceiptsCmd(app),
		newPayCmd(app),
		newNotifyCmd(app),
	)

	return rootCmd
}
