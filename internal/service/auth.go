package service

import (
	"errors"

	"github.com/wagneradl/mission-control/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when login or refresh fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// OperatorSubject is the token subject for the single dashboard operator.
const OperatorSubject = "operator"

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthService handles the single-operator login. The dashboard has no user
// table; one bcrypt hash from configuration guards the whole API.
type AuthService struct {
	passwordHash string
	jwtManager   *security.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(passwordHash string, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{passwordHash: passwordHash, jwtManager: jwtManager}
}

// Login verifies the operator password and issues a token pair.
func (s *AuthService) Login(password string) (*TokenPair, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issue()
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	subject, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil || subject != OperatorSubject {
		return nil, ErrInvalidCredentials
	}
	return s.issue()
}

func (s *AuthService) issue() (*TokenPair, error) {
	access, refresh, expiresIn, err := s.jwtManager.GenerateTokenPair(OperatorSubject)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: expiresIn}, nil
}
