package service

import (
	"crypto/subtle"

	"github.com/oakmount/siteadmin/internal/config"
	"github.com/oakmount/siteadmin/internal/logger"
)

type authService struct {
	credentials map[string]string

	logger *logger.Logger
}

// NewAuthService builds the credential gate from configuration. The
// credential mapping is resolved once here and never mutated afterwards.
func NewAuthService(cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	credentials, err := cfg.CredentialMap()
	if err != nil {
		return nil, err
	}

	return &authService{
		credentials: credentials,
		logger:      logger,
	}, nil
}

// Authenticate reports whether the pair matches a stored credential.
// Password comparison is constant-time.
func (s *authService) Authenticate(username, password string) bool {
	stored, ok := s.credentials[username]
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}
