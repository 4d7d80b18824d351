package token

import (
	"errors"
	"fmt"
	"time"

	"satta_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdminToken Подписывает токен для служебных ручек
func GenerateAdminToken(subject string, secretKey []byte, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("subject is empty")
	}

	now := time.Now()
	claims := model.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: model.AdminRole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role != model.AdminRole {
		return nil, errors.New("token has no admin role")
	}

	return claims, nil
}
