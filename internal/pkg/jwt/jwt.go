// Package jwt validates access tokens issued by the external identity
// service. This service never issues end-user tokens itself; GenerateToken
// exists for local development and tests.
package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateToken(employeeID string, isAdmin bool, expiration time.Duration) (string, error)
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(employeeID string, isAdmin bool, expiration time.Duration) (string, error) {
	claims := map[string]interface{}{
		"employee_id": employeeID,
		"is_admin":    isAdmin,
		"type":        "access",
		"exp":         time.Now().Add(expiration).Unix(),
	}
	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, err
}
