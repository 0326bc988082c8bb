package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// FlowFitClaims represents custom JWT claims for FlowFit auth
type FlowFitClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
