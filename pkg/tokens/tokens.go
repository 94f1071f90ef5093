package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is fixed at issuance; tokens are not renewable.
const TokenTTL = 12 * time.Hour

type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Sign mints an HS256 token for the given identity with the fixed TTL.
func Sign(email string, secret []byte) (string, error) {
	return SignWithExpiry(email, secret, time.Now().Add(TokenTTL))
}

func SignWithExpiry(email string, secret []byte, exp time.Time) (string, error) {
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func AccessClaimsFromToken(tokenStr string, secret []byte) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Email == "" {
		claims.Email = claims.Subject
	}
	return &claims, nil
}
