package env

import (
	"fmt"
	"os"
	"time"

	"satta_backend/internal/config"
)

const (
	adminTokenKeyEnvName      = "ADMIN_TOKEN_SECRET"
	adminTokenDurationEnvName = "ADMIN_TOKEN_DURATION"

	defaultAdminTokenDuration = 24 * time.Hour
)

type adminConfig struct {
	tokenSecretKey string
	tokenDuration  time.Duration
}

// NewAdminConfig Секрет для подписи токенов служебных ручек.
// Без секрета служебные ручки не поднимаются
func NewAdminConfig() (config.AdminConfig, error) {
	secret := os.Getenv(adminTokenKeyEnvName)
	if len(secret) == 0 {
		return nil, fmt.Errorf("admin token secret key not found")
	}

	duration := defaultAdminTokenDuration
	if raw := os.Getenv(adminTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid admin token duration: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("admin token duration must be positive, got %s", parsed)
		}
		duration = parsed
	}

	return &adminConfig{
		tokenSecretKey: secret,
		tokenDuration:  duration,
	}, nil
}

func (a *adminConfig) TokenSecretKey() []byte {
	return []byte(a.tokenSecretKey)
}

func (a *adminConfig) TokenDuration() time.Duration {
	return a.tokenDuration
}
