package auth

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/sadopc/taskflow/internal/model"
	"github.com/sadopc/taskflow/internal/signal"
)

// ErrInProgress is returned when an auth call starts while another is running.
var ErrInProgress = errors.New("authentication already in progress")

type SessionState struct {
	IsAuthenticated bool
	IsLoading       bool
	User            *model.User
	ErrorMessage    string
}

// Session is the sign-in state machine. SignIn and SignUp block until the
// provider settles; run them off the UI goroutine.
type Session struct {
	provider Provider
	log      *log.Logger
	state    *signal.State[SessionState]
	busy     atomic.Bool
}

func NewSession(p Provider, logger *log.Logger) *Session {
	return &Session{
		provider: p,
		log:      logger,
		state:    signal.New(SessionState{}),
	}
}

func (s *Session) State() SessionState {
	return s.state.Get()
}

func (s *Session) Subscribe(fn func(SessionState)) func() {
	return s.state.Subscribe(fn)
}

// SignIn authenticates and returns the settled state. Rejected credentials
// are reported through ErrorMessage, not the error result.
func (s *Session) SignIn(ctx context.Context, email, password string) (SessionState, error) {
	return s.run(ctx, "sign in", email, func(ctx context.Context) (model.User, error) {
		return s.provider.SignIn(ctx, email, password)
	})
}

func (s *Session) SignUp(ctx context.Context, email, password string) (SessionState, error) {
	return s.run(ctx, "sign up", email, func(ctx context.Context) (model.User, error) {
		return s.provider.SignUp(ctx, email, password)
	})
}

func (s *Session) run(ctx context.Context, op, email string, call func(context.Context) (model.User, error)) (SessionState, error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Warn("rejected concurrent auth call", "op", op)
		return s.State(), ErrInProgress
	}
	defer s.busy.Store(false)

	s.state.Update(func(st SessionState) SessionState {
		st.IsLoading = true
		st.ErrorMessage = ""
		return st
	})

	user, err := call(ctx)

	var next SessionState
	switch {
	case err == nil:
		next = SessionState{IsAuthenticated: true, User: &user}
		s.log.Info("signed in", "op", op, "user", user.ID)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.state.Set(SessionState{})
		s.log.Info("auth cancelled", "op", op, "error", err)
		return s.State(), err
	default:
		var verr *model.ValidationError
		msg := err.Error()
		if errors.As(err, &verr) {
			msg = verr.Message
		}
		next = SessionState{ErrorMessage: msg}
		s.log.Info("auth rejected", "op", op, "email", email, "reason", msg)
	}

	s.state.Set(next)
	return next, nil
}

// SignOut resets to the initial state unconditionally.
func (s *Session) SignOut() {
	s.state.Set(SessionState{})
	s.log.Info("signed out")
}

func (s *Session) ClearError() {
	s.state.Update(func(st SessionState) SessionState {
		st.ErrorMessage = ""
		return st
	})
}

// UpdateProfile changes the display name of the signed-in user.
func (s *Session) UpdateProfile(displayName string) error {
	if displayName == "" {
		return model.NewValidationError("displayName", "display name must not be empty")
	}
	var updated bool
	s.state.Update(func(st SessionState) SessionState {
		if st.User == nil {
			return st
		}
		u := *st.User
		u.DisplayName = displayName
		st.User = &u
		updated = true
		return st
	})
	if !updated {
		return errors.New("update profile: not signed in")
	}
	return nil
}
