package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated state of a browser. It is decoded from the
// session cookie by the HTTP layer and passed explicitly to every protected
// operation.
type Session struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user"`
	Role     Role   `json:"role"`
}

// IsZero reports whether s is the anonymous session.
func (s Session) IsZero() bool {
	return s.UserID == 0
}

// NewSession builds the session established for u after a successful login.
func NewSession(u User) Session {
	return Session{
		UserID:   u.UserID,
		UserName: u.Name,
		Role:     u.Role,
	}
}

// SessionToken is the signed representation of a [Session] stored in the
// session cookie.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set; the subject
// claim carries the user ID, Name and Role carry the rest of the session.
type SessionToken struct {
	jwt.RegisteredClaims

	// Name is the display name of the user at the time of issuing.
	Name string `json:"name"`

	// Role is the access tag of the user at the time of issuing.
	Role Role `json:"role"`

	// SignedString is the compact JWS form; it is never part of the claims.
	SignedString string `json:"-"`
}

// GetUserID parses the subject claim as the user identifier.
func (t *SessionToken) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Session converts the claims back into a [Session].
func (t *SessionToken) Session() (Session, error) {
	userID, err := t.GetUserID()
	if err != nil {
		return Session{}, err
	}

	return Session{UserID: userID, UserName: t.Name, Role: t.Role}, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
