package utils

import (
	"errors"
	"time"

	"ecoscan/config"

	"github.com/golang-jwt/jwt"
)

// TokenTTL is how long an issued bearer token stays valid. Tokens are
// stateless: there is no revocation list, validity is signature plus expiry.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers bad signatures, malformed tokens, and expiry.
var ErrInvalidToken = errors.New("invalid or expired token")

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject (accountID) and email.
// The token expires after the specified duration.
func GenerateToken(subject, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// VerifyToken extracts the account ID and email from a valid token string.
// Expired or tampered tokens fail with ErrInvalidToken.
func VerifyToken(tokenString string) (accountID, email string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", ErrInvalidToken
	}
	mail, _ := claims["email"].(string)

	return sub, mail, nil
}
