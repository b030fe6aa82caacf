package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados do usuário carregados no token da API
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email,omitempty"`
	UserRoleID int    `json:"user_role_id"`
	CompanyID  string `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}
