package auth

import (
	"fmt"
	"time"

	"labtrack/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrTokenExpired = errors.New("invalid or expired token")

type JWTService interface {
	GenerateJWT(userID string, role models.Role) (string, error)
	GenerateRefreshToken(userID string) (string, error)
	ParseJWT(tokenStr string) (string, models.Role, error)
	ParseRefreshToken(tokenStr string) (string, error)
}

type jwtService struct {
	jwtSecret          []byte
	refreshSecret      []byte
	tokenExpiry        time.Duration
	refreshTokenExpiry time.Duration
}

func NewJWTService(secret, refreshSecret string) JWTService {
	return &jwtService{
		jwtSecret:          []byte(secret),
		refreshSecret:      []byte(refreshSecret),
		tokenExpiry:        15 * time.Minute,
		refreshTokenExpiry: 7 * 24 * time.Hour,
	}
}

func (j *jwtService) GenerateJWT(userID string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"typ":  "access",
		"exp":  time.Now().Add(j.tokenExpiry).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.jwtSecret)
}

func (j *jwtService) GenerateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"typ": "refresh",
		"exp": time.Now().Add(j.refreshTokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.refreshSecret)
}

// ParseJWT returns the subject and role of an access token. The role claim is
// informational; callers re-read the role from the directory.
func (j *jwtService) ParseJWT(tokenStr string) (string, models.Role, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return j.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("%w: %v", ErrTokenExpired, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "access" {
		return "", "", errors.New("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", errors.New("invalid 'sub' claim")
	}
	role, _ := claims["role"].(string)
	return sub, models.Role(role), nil
}

func (j *jwtService) ParseRefreshToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return j.refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "refresh" {
		return "", errors.New("invalid refresh token")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid 'sub' claim")
	}
	return sub, nil
}
