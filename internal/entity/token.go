package entity

import "github.com/golang-jwt/jwt/v5"

type Session struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

type SessionClaims struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
	jwt.RegisteredClaims
}
