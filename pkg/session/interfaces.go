//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=interfaces.go -destination=mock_interfaces.go -package=session

package session

import (
	"context"

	"github.com/cloudposse/tokenicon/pkg/icon"
	"github.com/cloudposse/tokenicon/pkg/token"
)

// Presenter is the display surface a session drives.
type Presenter interface {
	// ShowIcon displays icon. A nil icon.Image means keep the current placeholder.
	ShowIcon(resolved icon.ResolvedIcon)
	// ShowText displays the current text of field.
	ShowText(field Field, text string)
	// ShowLockControl reflects the lock state and whether the control is usable.
	ShowLockControl(locked, enabled bool)
	// NavigateAway leaves the edit view.
	NavigateAway()
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// IconResolver produces the icon for a token.
type IconResolver interface {
	Resolve(ctx context.Context, tok *token.Token, size int, deliver func(icon.ResolvedIcon)) (icon.ResolvedIcon, bool)
}
