package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified payload of an auth-provider token: the stable
// external identity id plus the email asserted at sign-in.
type Identity struct {
	AuthID string
	Email  string
}

// IdentityVerifier validates HMAC-signed identity tokens issued by the
// auth provider. The provider owns credentials and sign-in; this boundary
// only proves "who" before the profile lookup runs.
type IdentityVerifier struct {
	secretKey []byte
}

func NewIdentityVerifier(secretKey []byte) *IdentityVerifier {
	return &IdentityVerifier{secretKey: secretKey}
}

// Verify parses and validates a token, returning the identity it asserts.
func (v *IdentityVerifier) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse identity token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid identity token")
	}

	authID, ok := claims["sub"].(string)
	if !ok || authID == "" {
		return nil, errors.New("missing or invalid sub claim")
	}

	if expFloat, ok := claims["exp"].(float64); ok {
		if time.Now().After(time.Unix(int64(expFloat), 0)) {
			return nil, errors.New("identity token expired")
		}
	}

	email, _ := claims["email"].(string)

	return &Identity{AuthID: authID, Email: email}, nil
}

// Sign issues an identity token. Production tokens come from the auth
// provider; this is used by tests and local tooling.
func (v *IdentityVerifier) Sign(authID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   authID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
