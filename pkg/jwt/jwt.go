package jwt

import (
	"errors"
	"time"

	"github.com/FkReMy/hospital-bed-system-sub001/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carry the session identity. ActiveRole is the role the token was
// issued for; Roles is the full assigned set so role switching can be
// offered without another round trip.
type Claims struct {
	UserID             string    `json:"user_id"`
	Email              string    `json:"email"`
	ActiveRole         string    `json:"role"`
	Roles              []string  `json:"roles,omitempty"`
	MustChangePassword bool      `json:"must_change_password,omitempty"`
	TokenType          TokenType `json:"token_type"`
	TokenID            string    `json:"token_id"`
	jwt.RegisteredClaims
}

// Identity is what a token gets minted for
type Identity struct {
	UserID             string
	Email              string
	ActiveRole         string
	Roles              []string
	MustChangePassword bool
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) generate(identity Identity, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:             identity.UserID,
		Email:              identity.Email,
		ActiveRole:         identity.ActiveRole,
		Roles:              identity.Roles,
		MustChangePassword: identity.MustChangePassword,
		TokenType:          tokenType,
		TokenID:            tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) GenerateAccessToken(identity Identity) (string, string, error) {
	return s.generate(identity, AccessToken, s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(identity Identity) (string, string, error) {
	return s.generate(identity, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}
