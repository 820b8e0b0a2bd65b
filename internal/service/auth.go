package service

import (
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService guards the GM console. There is exactly one shared GM
// credential; a successful login yields a signed token carried in the
// x-gm-token header on every GM route.
type AuthService struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

type gmClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

func NewAuthService(password, secret string, ttl time.Duration) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		passwordHash: hash,
		secret:       []byte(secret),
		ttl:          ttl,
	}, nil
}

// Login checks the shared GM password and returns a fresh token.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", &AuthError{Reason: "wrong password"}
	}

	now := time.Now()
	claims := gmClaims{
		Role: "gm",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", storageError("failed to sign GM token", err)
	}
	return token, nil
}

// ValidateToken verifies signature and expiry of a GM token.
func (s *AuthService) ValidateToken(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &gmClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return &AuthError{Reason: "GM unauthorized"}
	}
	return nil
}
