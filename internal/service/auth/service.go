package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session выданный сеанс администратора
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service сервис аутентификации администратора.
// Пароль хранится в конфигурации как hex-дайджест SHA-256; сессии
// живут в памяти и теряются при перезапуске, что для единственной
// админ-панели приемлемо.
type Service struct {
	username     string
	passwordSHA  string
	sessionTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu       sync.RWMutex
	sessions map[string]time.Time
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(username, passwordSHA string, sessionTTL time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		username:     username,
		passwordSHA:  passwordSHA,
		sessionTTL:   sessionTTL,
		timeProvider: timeProvider,
		logger:       logger,
		sessions:     map[string]time.Time{},
	}
}

// Login проверяет пару логин/пароль и выдает токен сессии.
// Сравнение дайджестов выполняется за константное время.
func (s *Service) Login(username, password string) (*Session, error) {
	digest := sha256.Sum256([]byte(password))
	passwordOK := subtle.ConstantTimeCompare(
		[]byte(hex.EncodeToString(digest[:])),
		[]byte(s.passwordSHA),
	) == 1
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	if !usernameOK || !passwordOK {
		s.logger.Warn("Login: invalid credentials for username=%s", username)
		return nil, ErrInvalidCredentials
	}

	session := &Session{
		Token:     uuid.NewString(),
		ExpiresAt: s.timeProvider.Now().Add(s.sessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session.ExpiresAt
	s.mu.Unlock()

	s.logger.Info("Login: issued session for username=%s, expires at %s",
		username, session.ExpiresAt.Format(time.RFC3339))

	return session, nil
}

// VerifyToken возвращает true, если токен выдан и сессия не истекла.
// Истекшие сессии удаляются по пути.
func (s *Service) VerifyToken(token string) bool {
	s.mu.RLock()
	expiresAt, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	if s.timeProvider.Now().After(expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return false
	}

	return true
}

// Logout аннулирует сессию. Неизвестный токен не считается ошибкой.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
