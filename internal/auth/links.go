package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ResolveClaims подписанная ссылка для ответа на запрос "есть ли кто-то свободный"
// Одна ссылка - один исход, сотрудник просто переходит по нужной
type ResolveClaims struct {
	RequestID string `json:"rid"`
	Outcome   string `json:"outcome"`
	jwt.RegisteredClaims
}

// LinkSigner выпускает и проверяет токены ссылок
type LinkSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewLinkSigner создает подписчик ссылок
func NewLinkSigner(secret string, ttl time.Duration) *LinkSigner {
	return &LinkSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign выпускает токен для пары запрос/исход
func (s *LinkSigner) Sign(requestID uuid.UUID, outcome string) (string, error) {
	now := s.now()
	c := ResolveClaims{
		RequestID: requestID.String(),
		Outcome:   outcome,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify проверяет токен и возвращает исход, за который он подписан
func (s *LinkSigner) Verify(raw string, requestID uuid.UUID) (string, error) {
	claims := &ResolveClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, hmacKey(string(s.secret)), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if !tok.Valid {
		return "", ErrBadToken
	}
	if claims.RequestID != requestID.String() {
		return "", ErrLinkMismatch
	}
	return claims.Outcome, nil
}
