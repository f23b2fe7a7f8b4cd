package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mountainride-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const (
	tokenIssuer   = "mountainride-backend"
	tokenAudience = "shop-api"
)

// EmployeeClaims are carried by every access token issued to shop staff
type EmployeeClaims struct {
	EmployeeID int32               `json:"employee_id"`
	Email      string              `json:"email,omitempty"`
	Role       domain.EmployeeRole `json:"role"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the bearer may use administrative endpoints
func (c *EmployeeClaims) IsAdmin() bool {
	return c.Role == domain.EmployeeRoleAdmin
}

type TokenManager interface {
	GenerateAccessToken(employee *domain.Employee) (string, error)
	ValidateToken(tokenString string) (*EmployeeClaims, error)
}

type tokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *tokenManager) GenerateAccessToken(employee *domain.Employee) (string, error) {
	now := m.now()
	claims := EmployeeClaims{
		EmployeeID: employee.ID,
		Email:      employee.Email,
		Role:       employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(employee.ID)),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*EmployeeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EmployeeClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(m.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*EmployeeClaims); ok && token.Valid {
		if claims.EmployeeID == 0 && claims.Subject != "" {
			id, _ := strconv.Atoi(claims.Subject)
			claims.EmployeeID = int32(id)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
