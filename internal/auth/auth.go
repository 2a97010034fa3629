package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtIssuer   = "tessalp-gyms"
	jwtAudience = "tessalp-users"

	// TokenType values carried in the "type" claim.
	TokenTypeGym       = "gym"
	TokenTypeGymAccess = "gym_access"
	TokenTypeMember    = "member"

	GymSessionTTL  = 7 * 24 * time.Hour
	GymAccessTTL   = 24 * time.Hour
	UserSessionTTL = 7 * 24 * time.Hour
)

var (
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidTokenType = errors.New("invalid token type")
	ErrEmptyAuthSecret  = errors.New("auth secret cannot be empty")
)

// Claims is the payload shared by every session token. GymID is set for gym
// and gym_access tokens, UserID for member tokens.
type Claims struct {
	GymID     int    `json:"gym_id,omitempty"`
	AdminCode string `json:"admin_code,omitempty"`
	UserID    int    `json:"user_id,omitempty"`
	TokenType string `json:"type"`
	Verified  bool   `json:"verified,omitempty"`
	jwt.RegisteredClaims
}

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func CheckPassword(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

func generateToken(claims *Claims, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrEmptyAuthSecret
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    jwtIssuer,
		Audience:  []string{jwtAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateGymToken issues the primary per-tenant admin session token.
func GenerateGymToken(gymID int, adminCode, secret string) (string, error) {
	return generateToken(&Claims{
		GymID:     gymID,
		AdminCode: adminCode,
		TokenType: TokenTypeGym,
	}, secret, GymSessionTTL)
}

// GenerateGymAccessToken issues the short-lived fallback access token set as
// the gym_access_<id> cookie by the verify flow.
func GenerateGymAccessToken(gymID int, secret string) (string, error) {
	return generateToken(&Claims{
		GymID:     gymID,
		TokenType: TokenTypeGymAccess,
		Verified:  true,
	}, secret, GymAccessTTL)
}

// GenerateUserToken issues a member account session token.
func GenerateUserToken(userID int, secret string) (string, error) {
	return generateToken(&Claims{
		UserID:    userID,
		TokenType: TokenTypeMember,
	}, secret, UserSessionTTL)
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	if secret == "" {
		return nil, ErrEmptyAuthSecret
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(jwtIssuer),
		jwt.WithAudience(jwtAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ValidateTokenOfType validates the token and additionally pins its "type"
// claim, so a member token can never stand in for a gym session.
func ValidateTokenOfType(tokenString, secret, tokenType string) (*Claims, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, ErrInvalidTokenType
	}
	return claims, nil
}
