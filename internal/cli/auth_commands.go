package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
)

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var (
		name         string
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "register <login>",
		Short: "Create a ledger account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), passwordFile)
			if err != nil {
				return err
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				_, stop := startSpinner(cmd.ErrOrStderr(), "registering...", ctx.flags.verbose)
				session, err := a.Services.AuthService.Register(cmd.Context(), args[0], password, name)
				stop()
				if err != nil {
					return err
				}
				a.SetSession(session)

				fmt.Fprintf(cmd.OutOrStdout(), "registered %s (account %d)\n", titleStyle.Render(session.Login), session.AccountID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name shown next to your assets")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the password from a file instead of prompting")
	return cmd
}

func newLoginCommand(ctx *commandContext) *cobra.Command {
	var passwordFile string

	cmd := &cobra.Command{
		Use:   "login <login>",
		Short: "Log in and keep the session for later commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), passwordFile)
			if err != nil {
				return err
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				_, stop := startSpinner(cmd.ErrOrStderr(), "logging in...", ctx.flags.verbose)
				session, err := a.Services.AuthService.Login(cmd.Context(), args[0], password)
				stop()
				if err != nil {
					return err
				}
				a.SetSession(session)

				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (account %d)\n", titleStyle.Render(session.Login), session.AccountID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the password from a file instead of prompting")
	return cmd
}

func newLogoutCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				if err := a.Services.AuthService.Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "logged out")
				return nil
			})
		},
	}
}

func newWhoAmICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				session, err := a.RequireSession()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderFields([][2]string{
					{"Login", session.Login},
					{"Account", fmt.Sprint(session.AccountID)},
					{"Ledger", session.LedgerURL},
				}))
				return nil
			})
		},
	}
}
