package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/presentation"
)

var (
	iconSetName string
	iconGetOut  string
)

var iconCmd = &cobra.Command{
	Use:   "icon",
	Short: "Manage custom icons assigned to issuers",
	Long:  `Custom icons are keyed by the exact issuer string and take precedence over brand glyphs.`,
}

var iconSetCmd = &cobra.Command{
	Use:   "set <issuer> <image>",
	Short: "Assign an image to an issuer",
	Long: `Assign a PNG, JPEG or GIF image to an issuer. The image may be a local path
or an http(s) URL. It is stored at its original resolution and scaled when shown.`,
	Example: `tokenicon icon set "Acme Corp" ./acme.png --name acme`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, source := args[0], args[1]

		fetcher, err := icon.NewFetcherFromConfig(cliConfig.Fetch, presentation.NewLoop())
		if err != nil {
			return err
		}
		img, err := fetcher.Load(cmd.Context(), source, 0)
		if err != nil {
			return err
		}

		custom, closeFn, err := newCustomIcons(cliConfig)
		if err != nil {
			return err
		}
		defer closeFn()

		name := iconSetName
		if name == "" {
			name = issuer
		}
		if err := custom.Assign(cmd.Context(), issuer, name, img); err != nil {
			return err
		}

		log.Info("Assigned custom icon", "issuer", issuer, "name", name)
		return nil
	},
}

var iconGetCmd = &cobra.Command{
	Use:     "get <issuer>",
	Short:   "Show the custom icon assigned to an issuer",
	Example: `tokenicon icon get "Acme Corp" --out acme.png`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		custom, closeFn, err := newCustomIcons(cliConfig)
		if err != nil {
			return err
		}
		defer closeFn()

		entry, err := custom.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		b := entry.Image.Bounds()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s %s\n%s %dx%d\n",
			labelStyle.Render("issuer:"), entry.Issuer,
			labelStyle.Render("name:"), entry.Name,
			labelStyle.Render("bitmap:"), b.Dx(), b.Dy())

		if iconGetOut == "" {
			return nil
		}
		return writePNG(iconGetOut, entry.Image)
	},
}

func init() {
	iconSetCmd.Flags().StringVar(&iconSetName, "name", "", "Display name of the icon (defaults to the issuer)")
	iconGetCmd.Flags().StringVarP(&iconGetOut, "out", "o", "", "Write the stored image to this PNG file")

	iconCmd.AddCommand(iconSetCmd)
	iconCmd.AddCommand(iconGetCmd)
	RootCmd.AddCommand(iconCmd)
}
