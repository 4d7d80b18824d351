package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims Клеймы токена для служебных ручек (/admin/*)
type AdminClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

const AdminRole = "admin"
