package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", what, s)
	}
	return id, nil
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var filter models.AssetFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets for sale, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				assets, err := a.Services.MarketService.List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				total, err := a.Services.MarketService.Count(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(assets) == 0 {
					fmt.Fprintln(out, helpStyle.Render("no assets listed"))
					return nil
				}

				rows := make([][]string, 0, len(assets))
				for _, asset := range assets {
					rows = append(rows, []string{
						strconv.FormatInt(asset.ID, 10),
						formatAmount(asset.Price),
						strconv.FormatInt(asset.Creator, 10),
						asset.MetadataPointer,
						formatTime(asset.CreatedAt),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Price", "Creator", "Metadata", "Listed"},
					rows,
					[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
				))
				fmt.Fprintln(out, helpStyle.Render(fmt.Sprintf("%d of %d assets", len(assets), total)))
				return nil
			})
		},
	}

	cmd.Flags().Uint64Var(&filter.Limit, "limit", 20, "page size")
	cmd.Flags().Int64Var(&filter.BeforeID, "before", 0, "only assets with a smaller id")
	return cmd
}

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <asset-id>",
		Short: "Show an asset and its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				info, err := a.Services.MarketService.Info(cmd.Context(), id)
				if err != nil {
					return err
				}

				fields := [][2]string{
					{"ID", strconv.FormatInt(info.ID, 10)},
					{"Name", info.Metadata.Name},
					{"Description", info.Metadata.Description},
					{"Price", formatAmount(info.Price)},
					{"Creator", strconv.FormatInt(info.Creator, 10)},
					{"Metadata", info.MetadataPointer},
					{"Content", info.Metadata.EncryptedContent},
					{"Listed", formatTime(info.CreatedAt)},
				}
				if info.Metadata.Image != "" {
					fields = append(fields, [2]string{"Image", info.Metadata.Image})
				}
				if info.MetadataRaw != "" {
					fields = append(fields, [2]string{"Raw metadata", info.MetadataRaw})
				}
				if _, ok := a.Session(); ok {
					fields = append(fields, [2]string{"Owned", strconv.FormatUint(info.Owned.Units, 10)})
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderFields(fields))
				return nil
			})
		},
	}
}

func newBuyCommand(ctx *commandContext) *cobra.Command {
	var payment string

	cmd := &cobra.Command{
		Use:   "buy <asset-id>",
		Short: "Pay for access to an asset",
		Long:  "Pays for one access unit. The payment must equal the listed price; it defaults to it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "asset id")
			if err != nil {
				return err
			}

			var pay *models.Amount
			if payment != "" {
				amount, err := models.ParseAmount(payment)
				if err != nil {
					return err
				}
				pay = &amount
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				if _, err := a.RequireSession(); err != nil {
					return err
				}

				_, stop := startSpinner(cmd.ErrOrStderr(), "purchasing...", ctx.flags.verbose)
				receipt, err := a.Services.MarketService.Purchase(cmd.Context(), id, pay)
				stop()
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "paid %s for asset %d, you hold %d unit(s)\n",
					formatAmount(receipt.Paid), receipt.AssetID, receipt.Units)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&payment, "payment", "", "amount to pay in whole units (defaults to the price)")
	return cmd
}

func newPendingCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pending [account-id]",
		Short: "Show the payout owed to an account (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var account int64
			if len(args) == 1 {
				id, err := parseID(args[0], "account id")
				if err != nil {
					return err
				}
				account = id
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				payout, err := a.Services.MarketService.Pending(cmd.Context(), account)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "account %d is owed %s\n", payout.AccountID, formatAmount(payout.Amount))
				return nil
			})
		},
	}
}

func newWithdrawCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw everything the ledger owes you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				if _, err := a.RequireSession(); err != nil {
					return err
				}

				withdrawal, err := a.Services.MarketService.Withdraw(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "withdrew %s (transfer %d)\n", formatAmount(withdrawal.Amount), withdrawal.TransferID)
				return nil
			})
		},
	}
}

func newBalanceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the value held by the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				balance, err := a.Services.MarketService.Balance(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ledger holds %s\n", formatAmount(balance.Amount))
				return nil
			})
		},
	}
}

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var filter models.EventFilter

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show ledger events in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				events, err := a.Services.MarketService.Events(cmd.Context(), filter)
				if err != nil {
					return err
				}

				rows := make([][]string, 0, len(events))
				for _, e := range events {
					asset := "-"
					if e.AssetID != 0 {
						asset = strconv.FormatInt(e.AssetID, 10)
					}
					rows = append(rows, []string{
						strconv.FormatInt(e.ID, 10),
						string(e.Type),
						asset,
						strconv.FormatInt(e.AccountID, 10),
						formatAmount(e.Amount),
						formatTime(e.CreatedAt),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Event", "Asset", "Account", "Amount", "At"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&filter.AfterID, "after", 0, "only events with a larger id")
	cmd.Flags().Int64Var(&filter.AccountID, "account", 0, "only events of this account")
	cmd.Flags().Uint64Var(&filter.Limit, "limit", 100, "page size")
	return cmd
}
