// Package password implements the emailed-token reset flow.
package password

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"career-assistant/internal/domain/user"
)

const (
	// 20 random bytes gives 160 bits of entropy in the hex token.
	resetTokenBytes = 20
	resetTokenTTL   = time.Hour
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid or expired reset token")
	ErrInternal     = errors.New("internal error")
)

// Sender dispatches the reset email. Implemented by the Brevo client.
type Sender interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}

type PasswordUsecase interface {
	RequestReset(ctx context.Context, email string) error
	ConfirmReset(ctx context.Context, token, newPassword string) error
}

type Service struct {
	users          user.Repository
	mailer         Sender
	frontendOrigin string
	logger         *zap.Logger
	now            func() time.Time
}

func NewService(users user.Repository, mailer Sender, frontendOrigin string, logger *zap.Logger) *Service {
	return &Service{
		users:          users,
		mailer:         mailer,
		frontendOrigin: strings.TrimRight(frontendOrigin, "/"),
		logger:         logger,
		now:            time.Now,
	}
}

// RequestReset issues a fresh token and emails the reset link. The token is
// persisted before the email goes out; a send failure leaves it valid, so the
// only recovery for a lost email is requesting again.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	token, err := newResetToken()
	if err != nil {
		return ErrInternal
	}

	expiry := s.now().Add(resetTokenTTL)
	if err := s.users.SetResetToken(ctx, email, token, expiry); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendOrigin, token)
	if err := s.mailer.SendPasswordReset(ctx, email, resetURL); err != nil {
		s.logger.Error("reset email dispatch failed", zap.String("email", email), zap.Error(err))
		return ErrInternal
	}

	return nil
}

// ConfirmReset consumes a token: the lookup requires an exact token match
// with an expiry strictly in the future, and a successful reset clears both
// token fields so the token is single-use. Unknown and expired tokens get
// the same answer.
func (s *Service) ConfirmReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidToken
	}

	u, err := s.users.GetByResetToken(ctx, token, s.now())
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrInvalidToken
		}
		return ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	if err := s.users.UpdatePassword(ctx, u.Email, string(hash)); err != nil {
		return ErrInternal
	}

	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
