package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Роли пользователей
const (
	RoleAdmin = "admin"
)

// Claims токен администратора, выпускается внешним сервисом идентификации
type Claims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin true, если токен выдан администратору
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// MakeToken выпускает токен (используется в тестах и утилитах)
func MakeToken(userID int64, role, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	c := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена
func ParseToken(raw, secret string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, hmacKey(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadToken, err)
	}
	if !tok.Valid || claims.UserID <= 0 {
		return nil, ErrBadToken
	}
	return claims, nil
}

// hmacKey отдает ключ только для HMAC подписей (защита от подмены алгоритма)
func hmacKey(secret string) jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(secret), nil
	}
}
