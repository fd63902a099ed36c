package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/you/phoneauthsvc/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	sessionTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, sessionTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// generateJTI creates a unique JWT ID
func (j *JWTServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateSessionToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateSessionToken(phone string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"phone": phone,
		"iss":   j.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(j.sessionTTL).Unix(),
		"jti":   j.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// ValidateSessionToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateSessionToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	phone, ok := claims["phone"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		Phone:     phone,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
