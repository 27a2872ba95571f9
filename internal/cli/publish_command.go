package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/client"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/crypto"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/internal/service"
	"github.com/Sambit-Kumar-Mohanty-26/Secure-IPFS-Marketplace/models"
)

type publishOptions struct {
	name         string
	description  string
	image        string
	price        string
	shape        string
	passwordFile string
	copy         bool
}

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var opts publishOptions

	cmd := &cobra.Command{
		Use:   "publish <file>",
		Short: "Encrypt a file, publish it and list it for sale",
		Long: "Encrypts the file locally, publishes the ciphertext and a metadata document " +
			"to content-addressed storage and lists the asset on the ledger at --price.\n" +
			"The plaintext never leaves this machine.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd, args[0])
			if err != nil {
				return err
			}

			return ctx.withApp(cmd.Context(), func(a *client.App) error {
				if _, err := a.RequireSession(); err != nil {
					return err
				}

				_, stop := startSpinner(cmd.ErrOrStderr(), "encrypting and publishing...", ctx.flags.verbose)
				result, err := a.Services.PublishService.PublishAsset(cmd.Context(), req)
				stop()
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("asset %d listed", result.Asset.ID)))
				fmt.Fprintln(out, renderFields([][2]string{
					{"Name", req.Name},
					{"Price", formatAmount(result.Asset.Price)},
					{"Shape", req.Shape.String()},
					{"Content", result.ContentID.URI()},
					{"Metadata", result.MetadataID.URI()},
				}))
				if result.Key != nil {
					fmt.Fprintln(out, helpStyle.Render("content key (keep a backup): "+string(crypto.EncodeKeyMaterial(*result.Key))))
				}

				if opts.copy {
					if err := clipboard.WriteAll(result.MetadataID.URI()); err != nil {
						ctx.logger().Warn().Err(err).Msg("copy to clipboard")
						fmt.Fprintln(cmd.ErrOrStderr(), helpStyle.Render("clipboard unavailable: "+err.Error()))
					} else {
						fmt.Fprintln(out, helpStyle.Render("metadata pointer copied to clipboard"))
					}
				}
				return nil
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.name, "name", "", "asset name (defaults to the file name)")
	flags.StringVar(&opts.description, "description", "", "asset description")
	flags.StringVar(&opts.image, "image", "", "ipfs:// preview image")
	flags.StringVar(&opts.price, "price", "", "price in whole units, e.g. 1 or 0.25")
	flags.StringVar(&opts.shape, "shape", crypto.ShapeCombined.String(), "envelope shape: combined (random key) or detached (password)")
	flags.StringVar(&opts.passwordFile, "password-file", "", "password for the detached shape; prompts when empty")
	flags.BoolVar(&opts.copy, "copy", false, "copy the metadata pointer to the clipboard")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (o publishOptions) request(cmd *cobra.Command, path string) (service.PublishRequest, error) {
	price, err := models.ParseAmount(o.price)
	if err != nil {
		return service.PublishRequest{}, err
	}

	shape, err := crypto.ParseShape(o.shape)
	if err != nil {
		return service.PublishRequest{}, err
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return service.PublishRequest{}, fmt.Errorf("read asset: %w", err)
	}

	name := strings.TrimSpace(o.name)
	if name == "" {
		name = filepath.Base(path)
	}

	req := service.PublishRequest{
		Name:        name,
		Description: o.description,
		Image:       o.image,
		Contents:    contents,
		Price:       price,
		Shape:       shape,
	}

	if shape == crypto.ShapeDetachedTag {
		req.Password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), o.passwordFile)
		if err != nil {
			return service.PublishRequest{}, err
		}
	}

	return req, nil
}
