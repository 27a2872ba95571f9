package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/workers"
)

// fetched is the outcome of one asset retrieval.
type fetched struct {
	assetID int64
	content service.RetrievedContent
	path    string
}

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var (
		outDir   string
		shape    string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "fetch <asset-id>...",
		Short: "Retrieve and decrypt purchased assets",
		Long: "Requests the key of every asset from the ledger, fetches the ciphertext through " +
			"the configured gateways, decrypts it and writes it to --out as asset-<id> with an " +
			"extension matching the detected content type.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg, "asset id")
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			envelopeShape, err := crypto.ParseShape(shape)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				if _, err := a.RequireSession(); err != nil {
					return err
				}

				results := make([]fetched, len(ids))
				pool := workers.New(parallel)
				for i, id := range ids {
					pool.Add(workers.WorkerFunc(func(runCtx context.Context) error {
						retrieved, err := a.Services.RetrievalService.Retrieve(runCtx, id, envelopeShape)
						if err != nil {
							return err
						}
						path := filepath.Join(outDir, fmt.Sprintf("asset-%d%s", id, retrieved.Kind.Extension()))
						if err := os.WriteFile(path, retrieved.Data, 0o600); err != nil {
							return fmt.Errorf("write asset %d: %w", id, err)
						}
						results[i] = fetched{assetID: id, content: retrieved, path: path}
						return nil
					}))
				}

				_, stop := startSpinner(cmd.ErrOrStderr(), fmt.Sprintf("fetching %d asset(s)...", len(ids)), ctx.flags.verbose)
				errs := pool.Run(cmd.Context())
				stop()

				rows := make([][]string, 0, len(ids))
				for i, id := range ids {
					if errs[i] != nil {
						rows = append(rows, []string{strconv.FormatInt(id, 10), "-", "-", errorStyle.Render(describeError(errs[i]))})
						continue
					}
					r := results[i]
					rows = append(rows, []string{
						strconv.FormatInt(id, 10),
						string(r.content.Kind),
						strconv.Itoa(len(r.content.Data)),
						r.path,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Asset", "Kind", "Bytes", "Saved to"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
				))

				return errors.Join(errs...)
			})
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write decrypted assets to")
	cmd.Flags().StringVar(&shape, "shape", crypto.ShapeCombined.String(), "envelope shape the creator used: combined or detached")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "assets fetched at the same time")
	return cmd
}
