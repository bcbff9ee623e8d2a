package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginCookie is the cookie name carrying the signed login token.
const LoginCookie = "loginToken"

// Principal is the authenticated user attached to a request. Core operations
// that need it take it as an explicit argument; it is never read from ambient
// storage below the handler layer.
type Principal struct {
	ID       string
	Fullname string
	IsAdmin  bool
}

// TokenService signs and verifies login tokens.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret string) TokenService {
	return TokenService{Secret: []byte(secret), TTL: 24 * time.Hour}
}

func (s TokenService) ttl() time.Duration {
	if s.TTL != 0 {
		return s.TTL
	}
	return 24 * time.Hour
}

// Issue signs a fresh token for the principal.
func (s TokenService) Issue(p Principal) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  p.ID,
		"fullname": p.Fullname,
		"is_admin": p.IsAdmin,
		"exp":      time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("sign login token: %w", err)
	}
	return signed, nil
}

// Parse verifies a token string and extracts the principal.
func (s TokenService) Parse(raw string) (Principal, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil {
		return Principal{}, fmt.Errorf("parse login token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Principal{}, errors.New("invalid login token")
	}

	p := Principal{}
	if v, ok := claims["user_id"].(string); ok {
		p.ID = v
	}
	if v, ok := claims["fullname"].(string); ok {
		p.Fullname = v
	}
	if v, ok := claims["is_admin"].(bool); ok {
		p.IsAdmin = v
	}
	if p.ID == "" {
		return Principal{}, errors.New("login token missing user id")
	}
	return p, nil
}
