package session

import (
	"context"
	"fmt"

	errUtils "github.com/cloudposse/tokenicon/errors"
	"github.com/cloudposse/tokenicon/pkg/icon"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/token"
)

// State is the edit session's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateViewing
	StateEditing
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	case StateClosing:
		return "closing"
	default:
		return "idle"
	}
}

// Field names an editable token attribute.
type Field string

const (
	FieldIssuer Field = "issuer"
	FieldLabel  Field = "label"
)

// ErasePrompt is the question asked before a token is erased.
const ErasePrompt = "Are you sure you want to delete this token?"

// Session edits one token. All methods must be called from the presentation context.
type Session struct {
	tok       *token.Token
	store     token.Store
	presenter Presenter
	resolver  IconResolver
	confirmer Confirmer
	iconSize  int
	state     State
}

// Option configures a Session.
type Option func(*Session)

// WithConfirmer sets how erase requests are confirmed.
func WithConfirmer(c Confirmer) Option {
	return func(s *Session) {
		s.confirmer = c
	}
}

// WithIconSize sets the target icon size.
func WithIconSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.iconSize = size
		}
	}
}

// New creates a session for tok. tok may be nil.
func New(tok *token.Token, store token.Store, presenter Presenter, resolver IconResolver, opts ...Option) *Session {
	s := &Session{
		tok:       tok,
		store:     store,
		presenter: presenter,
		resolver:  resolver,
		iconSize:  icon.DefaultSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the token under edit, or nil once it has been erased.
func (s *Session) Token() *token.Token {
	return s.tok
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// OnBecomeVisible refreshes every displayed field and resolves the icon.
// It is the only place icon resolution is started.
func (s *Session) OnBecomeVisible(ctx context.Context) {
	s.state = StateViewing
	if s.tok == nil {
		return
	}

	s.presenter.ShowText(FieldIssuer, s.tok.Issuer)
	s.presenter.ShowText(FieldLabel, s.tok.Label)
	s.presenter.ShowLockControl(s.tok.Locked, s.store.LockingSupported())

	if s.resolver == nil {
		return
	}
	resolved, pending := s.resolver.Resolve(ctx, s.tok, s.iconSize, func(late icon.ResolvedIcon) {
		if s.state == StateClosing {
			log.Debug("Dropping icon delivered after close", "issuer", s.tok.Identity().Issuer)
			return
		}
		s.presenter.ShowIcon(late)
	})
	log.Debug("Showing token", "issuer", s.tok.Issuer, "source", resolved.Source, "pending", pending)
	s.presenter.ShowIcon(resolved)
}

// ApplyEdit applies edit to field and reports whether it was handled.
// Unknown fields, invalid ranges, and sessions without a token are not handled.
func (s *Session) ApplyEdit(field Field, edit RangeEdit) bool {
	if s.tok == nil || s.state == StateClosing {
		return false
	}

	var target *string
	switch field {
	case FieldIssuer:
		target = &s.tok.Issuer
	case FieldLabel:
		target = &s.tok.Label
	default:
		log.Trace("Edit for unknown field not handled", "field", field)
		return false
	}

	updated, err := ApplyReplacement(*target, edit.Range, edit.Text)
	if err != nil {
		log.Debug("Edit not applied", "field", field, "error", err)
		return false
	}

	*target = updated
	s.state = StateEditing
	return true
}

// EndEditing returns from Editing to Viewing.
func (s *Session) EndEditing() {
	if s.state == StateEditing {
		s.state = StateViewing
	}
}

// RequestErase asks for confirmation and, when given, erases the token once and navigates away.
// A declined confirmation changes nothing.
func (s *Session) RequestErase(ctx context.Context) error {
	if s.tok == nil {
		return errUtils.ErrNoToken
	}
	if s.state == StateClosing {
		return errUtils.ErrSessionClosing
	}
	if s.confirmer == nil {
		return errUtils.Build(errUtils.ErrConfirmationFailure).WithHint("No confirmer is configured").Err()
	}

	ok, err := s.confirmer.Confirm(ctx, ErasePrompt)
	if err != nil {
		return fmt.Errorf(errUtils.ErrWrapFormat, errUtils.ErrConfirmationFailure, err)
	}
	if !ok {
		log.Debug("Erase cancelled", "issuer", s.tok.Issuer)
		return nil
	}

	if err := s.store.Erase(s.tok); err != nil {
		return err
	}
	log.Info("Erased token", "issuer", s.tok.Issuer, "label", s.tok.Label)

	// The token no longer exists, so the hide that follows must not save it.
	s.tok = nil
	s.presenter.NavigateAway()
	return nil
}

// SetLocked forwards the lock state to the store and shows what the store kept.
// When locking is unsupported the control is disabled and nothing changes.
func (s *Session) SetLocked(locked bool) error {
	if s.tok == nil {
		return errUtils.ErrNoToken
	}

	if !s.store.LockingSupported() {
		s.presenter.ShowLockControl(s.tok.Locked, false)
		return errUtils.ErrLockingUnsupported
	}

	err := s.store.SetLocked(s.tok, locked)
	s.presenter.ShowLockControl(s.tok.Locked, true)
	return err
}

// OnBecomeHidden persists the token once per hide. A session without a token does nothing.
// A failed save leaves the session open so the next hide tries again.
func (s *Session) OnBecomeHidden() error {
	if s.state == StateClosing {
		return nil
	}

	if s.tok != nil {
		if err := s.store.Save(s.tok); err != nil {
			return err
		}
		log.Debug("Saved token", "issuer", s.tok.Issuer)
	}
	s.state = StateClosing
	return nil
}
