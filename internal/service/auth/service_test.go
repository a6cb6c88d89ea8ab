package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sha(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func newTestService(clock TimeProvider) *Service {
	return NewService("admin", sha("secreto123"), 12*time.Hour, clock, nopLogger{})
}

func TestLogin_ValidCredentialsIssueVerifiableToken(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	session, err := svc.Login("admin", "secreto123")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, clock.now.Add(12*time.Hour), session.ExpiresAt)
	assert.True(t, svc.VerifyToken(session.Token))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "incorrecta"},
		{"wrong username", "root", "secreto123"},
		{"both wrong", "root", "incorrecta"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.Login(tt.username, tt.password)

			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Nil(t, session)
		})
	}
}

func TestVerifyToken_UnknownToken(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	assert.False(t, svc.VerifyToken("no-such-token"))
}

func TestVerifyToken_ExpiredSessionRejectedAndPruned(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	session, err := svc.Login("admin", "secreto123")
	require.NoError(t, err)

	clock.now = clock.now.Add(13 * time.Hour)

	assert.False(t, svc.VerifyToken(session.Token))

	// После отката часов токен все равно недействителен: сессия удалена
	clock.now = clock.now.Add(-13 * time.Hour)
	assert.False(t, svc.VerifyToken(session.Token))
}

func TestLogout_InvalidatesSession(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	session, err := svc.Login("admin", "secreto123")
	require.NoError(t, err)

	svc.Logout(session.Token)

	assert.False(t, svc.VerifyToken(session.Token))
}

func TestLogout_UnknownTokenIsNoop(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	svc.Logout("no-such-token")
}

func TestLogin_SessionsAreIndependent(t *testing.T) {
	clock := &fixedClock{now: time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)}
	svc := newTestService(clock)

	first, err := svc.Login("admin", "secreto123")
	require.NoError(t, err)
	second, err := svc.Login("admin", "secreto123")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	svc.Logout(first.Token)

	assert.False(t, svc.VerifyToken(first.Token))
	assert.True(t, svc.VerifyToken(second.Token))
}
