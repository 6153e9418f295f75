// Package auth issues and parses the access tokens that carry an
// authenticated actor identity between the edge and the core services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// Claims carries the standard registered claims plus the actor triple
// the core services depend on.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// GenerateToken signs an HS256 access token for the given actor.
func GenerateToken(actor models.Actor, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			Subject:   actor.Email,
		},
		Email: actor.Email,
		Name:  actor.Name,
		Role:  actor.Role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetActorFromToken validates tokenString and extracts the actor triple.
// Expired tokens map to common.ErrTokenExpired, anything else invalid to
// common.ErrInvalidToken.
func GetActorFromToken(tokenString string, secretKey []byte) (models.Actor, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Actor{}, common.ErrTokenExpired
		}
		return models.Actor{}, common.ErrInvalidToken
	}

	if !token.Valid || claims.Email == "" {
		return models.Actor{}, common.ErrInvalidToken
	}

	return models.Actor{Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
}
