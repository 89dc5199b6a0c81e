package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sadopc/taskflow/internal/model"
)

const (
	MsgEmptyCredentials = "email and password must not be empty"
	MsgPasswordTooShort = "password must be at least 6 characters"
	MsgInvalidEmail     = "invalid email address"

	MinPasswordLength = 6 // characters, not bytes
	MockUserID        = "mock_user_123"
)

// Provider authenticates credentials. Rejected credentials are reported as
// *model.ValidationError; anything else is an infrastructure failure.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (model.User, error)
	SignUp(ctx context.Context, email, password string) (model.User, error)
}

// MockProvider accepts any non-empty credentials after a fixed delay.
type MockProvider struct {
	SignInDelay time.Duration
	SignUpDelay time.Duration
	Now         func() time.Time
}

func NewMockProvider(signInDelay, signUpDelay time.Duration) *MockProvider {
	return &MockProvider{
		SignInDelay: signInDelay,
		SignUpDelay: signUpDelay,
		Now:         time.Now,
	}
}

func (p *MockProvider) SignIn(ctx context.Context, email, password string) (model.User, error) {
	if err := wait(ctx, p.SignInDelay); err != nil {
		return model.User{}, err
	}
	if email == "" || password == "" {
		return model.User{}, model.NewValidationError("credentials", MsgEmptyCredentials)
	}
	return model.User{
		ID:          MockUserID,
		Email:       email,
		DisplayName: LocalPart(email),
	}, nil
}

func (p *MockProvider) SignUp(ctx context.Context, email, password string) (model.User, error) {
	if err := wait(ctx, p.SignUpDelay); err != nil {
		return model.User{}, err
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return model.User{}, model.NewValidationError("password", MsgPasswordTooShort)
	}
	if email == "" {
		return model.User{}, model.NewValidationError("email", MsgInvalidEmail)
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return model.User{
		ID:          fmt.Sprintf("new_user_%d", now().UnixMilli()),
		Email:       email,
		DisplayName: LocalPart(email),
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LocalPart returns the part of email before the first "@", or all of it.
func LocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
