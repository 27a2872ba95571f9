package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

// NewRootCommand builds the marketplace command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	ctx := newCommandContext(build)

	rootCmd := &cobra.Command{
		Use:           "marketplace",
		Short:         "Publish, buy and fetch encrypted assets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.flags.configPath, "config", "c", "", "JSON configuration file")
	flags.StringVar(&ctx.flags.ledger, "ledger", "", "ledger API address")
	flags.StringSliceVar(&ctx.flags.gateways, "gateway", nil, "read gateway base URL, repeatable, tried in order")
	flags.StringVar(&ctx.flags.publishURL, "publish-url", "", "pinning service base URL")
	flags.StringVar(&ctx.flags.publishJWT, "publish-jwt", "", "pinning service bearer credential")
	flags.StringVar(&ctx.flags.db, "db", "", "local session database file")
	flags.StringVar(&ctx.flags.logFile, "log-file", "", "log file (defaults to \"logs\" next to the binary)")
	flags.BoolVarP(&ctx.flags.verbose, "verbose", "v", false, "debug logging, no spinners")

	rootCmd.AddCommand(
		newRegisterCommand(ctx),
		newLoginCommand(ctx),
		newLogoutCommand(ctx),
		newWhoAmICommand(ctx),
		newPublishCommand(ctx),
		newListCommand(ctx),
		newInfoCommand(ctx),
		newBuyCommand(ctx),
		newFetchCommand(ctx),
		newPendingCommand(ctx),
		newWithdrawCommand(ctx),
		newBalanceCommand(ctx),
		newEventsCommand(ctx),
		newVersionCommand(ctx),
	)

	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, build models.AppBuildInfo, args []string) int {
	cmd := NewRootCommand(build)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), describeError(err))
		}
		return 1
	}
	return 0
}
