package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/token"
)

var resolveFlags struct {
	issuer string
	label  string
	image  string
	size   int
	out    string
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the icon and background color for a token identity",
	Long: `Walk the icon waterfall for an issuer, label and optional image URI:
an explicit image wins, then a custom icon assigned to the issuer, then a matching brand glyph.
Remote images are downloaded before the result is printed.`,
	Example: `tokenicon resolve --issuer GitHub --label alice
tokenicon resolve --issuer Example --image https://example.com/logo.png --out icon.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newIconRuntime(cliConfig)
		if err != nil {
			return err
		}
		defer rt.Close()

		tok := &token.Token{
			Issuer: resolveFlags.issuer,
			Label:  resolveFlags.label,
			Image:  resolveFlags.image,
		}
		size := iconSize(cliConfig, resolveFlags.size)

		var late *icon.ResolvedIcon
		resolved, pending := rt.resolver.Resolve(cmd.Context(), tok, size, func(r icon.ResolvedIcon) {
			late = &r
		})
		if pending {
			rt.settle()
			if late != nil {
				resolved = *late
			} else {
				log.Warn("Remote icon unavailable, keeping the placeholder", "uri", tok.Image)
			}
		}

		describeIcon(cmd.OutOrStdout(), resolved)

		if resolveFlags.out == "" {
			return nil
		}
		if err := writePNG(resolveFlags.out, resolved.Image); err != nil {
			return err
		}
		log.Info("Wrote icon", "path", resolveFlags.out)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveFlags.issuer, "issuer", "", "Token issuer")
	resolveCmd.Flags().StringVar(&resolveFlags.label, "label", "", "Token label")
	resolveCmd.Flags().StringVar(&resolveFlags.image, "image", "", "Explicit image URI (http, https, file or a local path)")
	resolveCmd.Flags().IntVar(&resolveFlags.size, "size", 0, "Target icon size in pixels (defaults to icons.size)")
	resolveCmd.Flags().StringVarP(&resolveFlags.out, "out", "o", "", "Write the padded icon to this PNG file")
	RootCmd.AddCommand(resolveCmd)
}
