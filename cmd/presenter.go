package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/session"
)

// terminalPresenter renders an edit session as lines of text.
type terminalPresenter struct {
	out       io.Writer
	navigated bool
}

var _ session.Presenter = (*terminalPresenter)(nil)

func newTerminalPresenter(out io.Writer) *terminalPresenter {
	return &terminalPresenter{out: out}
}

func (p *terminalPresenter) ShowIcon(resolved icon.ResolvedIcon) {
	describeIcon(p.out, resolved)
}

func (p *terminalPresenter) ShowText(field session.Field, text string) {
	fmt.Fprintf(p.out, "%s %s\n", labelStyle.Render(string(field)+":"), text)
}

func (p *terminalPresenter) ShowLockControl(locked, enabled bool) {
	state := "unlocked"
	if locked {
		state = "locked"
	}
	if !enabled {
		state += mutedStyle.Render(" (locking unavailable)")
	}
	fmt.Fprintf(p.out, "%s %s\n", labelStyle.Render("lock:"), state)
}

func (p *terminalPresenter) NavigateAway() {
	p.navigated = true
	fmt.Fprintln(p.out, mutedStyle.Render("Token deleted."))
}

// isInteractive reports whether stdin is a terminal. Tests replace it.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptConfirmer asks on the terminal.
type promptConfirmer struct{}

var _ session.Confirmer = promptConfirmer{}

func (promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if !isInteractive() {
		return false, errUtils.Build(errUtils.ErrNotInteractive).
			WithHint("Pass --yes to confirm without a prompt").
			Err()
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// staticConfirmer answers every prompt the same way.
type staticConfirmer bool

func (c staticConfirmer) Confirm(context.Context, string) (bool, error) {
	return bool(c), nil
}
