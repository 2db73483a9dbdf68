package cmd

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/session"
	"github.com/cloudposse/tokenicon/pkg/token"
	"github.com/cloudposse/tokenicon/pkg/ui/theme"
)

var tokenAddFlags struct {
	id     string
	issuer string
	label  string
	image  string
}

var tokenEditFlags struct {
	issuer string
	label  string
	lock   bool
	unlock bool
}

var tokenRmYes bool

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "List, add, edit and delete stored tokens",
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored tokens with the icon source each one resolves to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, err := newTokenStore(cliConfig)
		if err != nil {
			return err
		}
		all, err := tokens.List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No tokens stored in "+tokens.Path()))
			return nil
		}

		rt, err := newIconRuntime(cliConfig)
		if err != nil {
			return err
		}
		defer rt.Close()

		size := iconSize(cliConfig, 0)
		rows := make([][]string, 0, len(all))
		for _, tok := range all {
			src := rt.resolver.Choose(cmd.Context(), tok, size)
			bg := "-"
			if key := src.ColorKey(); key != "" {
				bg = icon.Hex(rt.resolver.Background(key))
			}
			rows = append(rows, []string{tok.ID, tok.Issuer, tok.Label, src.Kind().String(), bg, strconv.FormatBool(tok.Locked)})
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(mutedStyle).
			Headers("ID", "ISSUER", "LABEL", "ICON", "BACKGROUND", "LOCKED").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return labelStyle.Foreground(lipgloss.Color(theme.ColorBlue)).Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var tokenAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Store a new token",
	Example: `tokenicon token add --id gh-alice --issuer GitHub --label alice`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens, err := newTokenStore(cliConfig)
		if err != nil {
			return err
		}

		tok := &token.Token{
			ID:     tokenAddFlags.id,
			Issuer: tokenAddFlags.issuer,
			Label:  tokenAddFlags.label,
			Image:  tokenAddFlags.image,
		}
		if err := tokens.Add(tok); err != nil {
			return err
		}
		log.Info("Added token", "id", tok.ID, "issuer", tok.Issuer)
		return nil
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a token the way the edit screen does",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, args[0], nil, func(*session.Session) error {
			return nil
		})
	},
}

var tokenEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit the issuer, label or lock state of a token",
	Example: `tokenicon token edit gh-alice --label alice@example.com
tokenicon token edit gh-alice --lock`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenEditFlags.lock && tokenEditFlags.unlock {
			return errUtils.Build(errUtils.ErrInvalidConfigValue).
				WithExplanation("--lock and --unlock cannot be used together").
				Err()
		}

		return withSession(cmd, args[0], nil, func(s *session.Session) error {
			if cmd.Flags().Changed("issuer") {
				replaceField(s, session.FieldIssuer, s.Token().Issuer, tokenEditFlags.issuer)
			}
			if cmd.Flags().Changed("label") {
				replaceField(s, session.FieldLabel, s.Token().Label, tokenEditFlags.label)
			}
			s.EndEditing()

			switch {
			case tokenEditFlags.lock:
				return s.SetLocked(true)
			case tokenEditFlags.unlock:
				return s.SetLocked(false)
			}
			return nil
		})
	},
}

var tokenRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a token after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var confirmer session.Confirmer = promptConfirmer{}
		if tokenRmYes {
			confirmer = staticConfirmer(true)
		}

		return withSession(cmd, args[0], confirmer, func(s *session.Session) error {
			return s.RequestErase(cmd.Context())
		})
	},
}

// replaceField replaces the whole text of field with value.
func replaceField(s *session.Session, field session.Field, current, value string) {
	edit := session.RangeEdit{
		Range: session.Range{Start: 0, Length: utf8.RuneCountInString(current)},
		Text:  value,
	}
	if !s.ApplyEdit(field, edit) {
		log.Warn("Edit was not applied", "field", field)
	}
}

// withSession shows token id in an edit session, runs fn, then hides the session so the token is saved.
func withSession(cmd *cobra.Command, id string, confirmer session.Confirmer, fn func(*session.Session) error) error {
	tokens, err := newTokenStore(cliConfig)
	if err != nil {
		return err
	}
	tok, err := tokens.Get(id)
	if err != nil {
		return err
	}

	rt, err := newIconRuntime(cliConfig)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := []session.Option{session.WithIconSize(iconSize(cliConfig, 0))}
	if confirmer != nil {
		opts = append(opts, session.WithConfirmer(confirmer))
	}
	s := session.New(tok, tokens, newTerminalPresenter(cmd.OutOrStdout()), rt.resolver, opts...)

	s.OnBecomeVisible(cmd.Context())
	rt.settle()

	fnErr := fn(s)
	if err := s.OnBecomeHidden(); err != nil {
		return err
	}
	return fnErr
}

func init() {
	tokenAddCmd.Flags().StringVar(&tokenAddFlags.id, "id", "", "Unique token id")
	tokenAddCmd.Flags().StringVar(&tokenAddFlags.issuer, "issuer", "", "Token issuer")
	tokenAddCmd.Flags().StringVar(&tokenAddFlags.label, "label", "", "Token label")
	tokenAddCmd.Flags().StringVar(&tokenAddFlags.image, "image", "", "Explicit image URI")

	tokenEditCmd.Flags().StringVar(&tokenEditFlags.issuer, "issuer", "", "New issuer")
	tokenEditCmd.Flags().StringVar(&tokenEditFlags.label, "label", "", "New label")
	tokenEditCmd.Flags().BoolVar(&tokenEditFlags.lock, "lock", false, "Lock the token")
	tokenEditCmd.Flags().BoolVar(&tokenEditFlags.unlock, "unlock", false, "Unlock the token")

	tokenRmCmd.Flags().BoolVarP(&tokenRmYes, "yes", "y", false, "Delete without asking for confirmation")

	tokenCmd.AddCommand(tokenListCmd, tokenAddCmd, tokenShowCmd, tokenEditCmd, tokenRmCmd)
	RootCmd.AddCommand(tokenCmd)
}
