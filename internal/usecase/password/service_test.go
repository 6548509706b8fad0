package password

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"career-assistant/internal/domain/user"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo(emails ...string) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]user.User{}}
	for _, e := range emails {
		r.users[e] = user.User{Email: e, PasswordHash: "old-hash"}
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.users[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) SetResetToken(_ context.Context, email, token string, expiry time.Time) error {
	u, ok := r.users[email]
	if !ok {
		return user.ErrNotFound
	}
	u.ResetToken = token
	u.ResetTokenExpiry = &expiry
	r.users[email] = u
	return nil
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string, now time.Time) (user.User, error) {
	for _, u := range r.users {
		if u.ResetToken == token && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	u, ok := r.users[email]
	if !ok {
		return user.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetToken = ""
	u.ResetTokenExpiry = nil
	r.users[email] = u
	return nil
}

func (r *fakeUserRepo) AppendHistory(context.Context, string, user.HistoryEntry) error { return nil }

func (r *fakeUserRepo) GetHistory(context.Context, string) ([]user.HistoryEntry, error) {
	return nil, user.ErrNotFound
}

type fakeSender struct {
	to       string
	resetURL string
	err      error
	calls    int
}

func (s *fakeSender) SendPasswordReset(_ context.Context, to, resetURL string) error {
	s.calls++
	s.to = to
	s.resetURL = resetURL
	return s.err
}

func TestRequestReset_IssuesTokenAndSendsEmail(t *testing.T) {
	repo := newFakeUserRepo("a@x.com")
	sender := &fakeSender{}
	svc := NewService(repo, sender, "http://localhost:3000", zap.NewNop())

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	err := svc.RequestReset(context.Background(), "a@x.com")
	require.NoError(t, err)

	u := repo.users["a@x.com"]
	require.Len(t, u.ResetToken, resetTokenBytes*2)
	require.NotNil(t, u.ResetTokenExpiry)
	require.Equal(t, issued.Add(time.Hour), *u.ResetTokenExpiry)

	require.Equal(t, 1, sender.calls)
	require.Equal(t, "a@x.com", sender.to)
	require.Equal(t, "http://localhost:3000/reset-password/"+u.ResetToken, sender.resetURL)
}

func TestRequestReset_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeSender{}, "http://localhost:3000", zap.NewNop())

	err := svc.RequestReset(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequestReset_SendFailureLeavesTokenPersisted(t *testing.T) {
	repo := newFakeUserRepo("a@x.com")
	sender := &fakeSender{err: errors.New("provider down")}
	svc := NewService(repo, sender, "http://localhost:3000", zap.NewNop())

	err := svc.RequestReset(context.Background(), "a@x.com")
	require.ErrorIs(t, err, ErrInternal)

	// No compensating rollback: the token stays usable.
	require.NotEmpty(t, repo.users["a@x.com"].ResetToken)
}

func TestConfirmReset_SuccessConsumesToken(t *testing.T) {
	repo := newFakeUserRepo("a@x.com")
	sender := &fakeSender{}
	svc := NewService(repo, sender, "http://localhost:3000", zap.NewNop())

	require.NoError(t, svc.RequestReset(context.Background(), "a@x.com"))
	token := repo.users["a@x.com"].ResetToken

	err := svc.ConfirmReset(context.Background(), token, "pw2")
	require.NoError(t, err)

	u := repo.users["a@x.com"]
	require.Empty(t, u.ResetToken)
	require.Nil(t, u.ResetTokenExpiry)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw2")))

	// Single-use: the same token must not work twice.
	err = svc.ConfirmReset(context.Background(), token, "pw3")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfirmReset_ExpiredToken(t *testing.T) {
	repo := newFakeUserRepo("a@x.com")
	svc := NewService(repo, &fakeSender{}, "http://localhost:3000", zap.NewNop())

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	require.NoError(t, svc.RequestReset(context.Background(), "a@x.com"))
	token := repo.users["a@x.com"].ResetToken

	svc.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	err := svc.ConfirmReset(context.Background(), token, "pw2")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestConfirmReset_UnknownToken(t *testing.T) {
	svc := NewService(newFakeUserRepo("a@x.com"), &fakeSender{}, "http://localhost:3000", zap.NewNop())

	err := svc.ConfirmReset(context.Background(), strings.Repeat("ab", resetTokenBytes), "pw2")
	require.ErrorIs(t, err, ErrInvalidToken)

	err = svc.ConfirmReset(context.Background(), "", "pw2")
	require.ErrorIs(t, err, ErrInvalidToken)
}
