package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
)

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the client build and the ledger version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ctx.build.String())

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				version, err := a.Services.MarketService.ServerVersion(cmd.Context())
				if err != nil {
					ctx.logger().Warn().Err(err).Msg("ledger version")
					fmt.Fprintln(out, helpStyle.Render("Ledger version: unavailable"))
					return nil
				}
				fmt.Fprintf(out, "Ledger version: %s\n", version)
				return nil
			})
		},
	}
}
