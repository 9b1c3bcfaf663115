package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/climate-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

// SessionIssuer is the iss claim of every session token.
const SessionIssuer = "climate-dashboard"

// GenerateSessionToken signs session as an HMAC-SHA256 JWT.
//
// The token carries:
//   - Issuer    (iss): [SessionIssuer]
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): clock.Now()
//   - ExpiresAt (exp): clock.Now() plus tokenDuration
//   - name, role: the rest of the session
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken(session, 24*time.Hour, "secret", clockwork.NewRealClock())
func GenerateSessionToken(session models.Session, tokenDuration time.Duration, signKey string, clock clockwork.Clock) (models.SessionToken, error) {
	if session.IsZero() || tokenDuration <= 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := clock.Now()
	claims := models.SessionToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    SessionIssuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: session.UserName,
		Role: session.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	claims.SignedString = signed
	return claims, nil
}

// ValidateAndParseSessionToken verifies signature, issuer and expiry of
// tokenString against clock and returns its claims.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseSessionToken(cookie.Value, "secret", clock)
//	if err != nil {
//	    // treat as anonymous
//	}
func ValidateAndParseSessionToken(tokenString, signKey string, clock clockwork.Clock) (models.SessionToken, error) {
	claims := models.SessionToken{}
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(SessionIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(clock.Now),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims.SignedString = tokenString
	return claims, nil
}
