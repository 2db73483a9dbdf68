package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/ui/theme"
)

var matchListFlag bool

var matchCmd = &cobra.Command{
	Use:   "match [issuer]",
	Short: "Show which brand an issuer matches",
	Example: `tokenicon match "GitHub Enterprise"
tokenicon match --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := icon.NewCatalog()
		w := cmd.OutOrStdout()

		if matchListFlag {
			for _, b := range catalog.Brands() {
				fmt.Fprintf(w, "%s %s\n", theme.Swatch(b.Glyph, b.Color), b.ID)
			}
			return nil
		}

		if len(args) == 0 {
			return errUtils.Build(errUtils.ErrEmptyIssuer).
				WithHint("Pass an issuer, or --list to print every known brand").
				Err()
		}

		id, ok := catalog.Match(args[0])
		if !ok {
			return errUtils.Build(errUtils.ErrNoBrandMatch).
				WithContext("issuer", args[0]).
				WithExitCode(errUtils.ExitCodeNotFound).
				Err()
		}

		b, _ := catalog.Brand(id)
		fmt.Fprintf(w, "%s %s\n", theme.Swatch(b.Glyph, b.Color), b.ID)
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVar(&matchListFlag, "list", false, "List every known brand")
	RootCmd.AddCommand(matchCmd)
}
