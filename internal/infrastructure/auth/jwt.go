package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campus-pulse/campuspulse/internal/shared/biztime"
)

const sessionIssuer = "campus-pulse"

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims carries an opaque JSON payload. The HTTP session decides
// what goes in it; this package only signs and verifies.
type SessionClaims struct {
	Data json.RawMessage `json:"data"`
	jwt.RegisteredClaims
}

// SessionTokenService signs visitor state into an HS256 token.
type SessionTokenService struct {
	secret []byte
	maxAge time.Duration
}

func NewSessionTokenService(secret string, maxAge time.Duration) *SessionTokenService {
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	return &SessionTokenService{
		secret: []byte(secret),
		maxAge: maxAge,
	}
}

func (s *SessionTokenService) MaxAge() time.Duration {
	return s.maxAge
}

// Issue signs payload with a fresh expiry.
func (s *SessionTokenService) Issue(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode session payload: %w", err)
	}

	now := biztime.NowUTC()
	claims := &SessionClaims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Parse verifies tokenString and decodes its payload into dst. Any failure,
// including expiry, wraps ErrInvalidSessionToken.
func (s *SessionTokenService) Parse(tokenString string, dst any) error {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(biztime.NowUTC),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return ErrInvalidSessionToken
	}

	if err := json.Unmarshal(claims.Data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	return nil
}
