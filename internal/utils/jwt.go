package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSubject is returned when a credential carries no usable subject.
var ErrNoSubject = errors.New("token has no subject")

// SubjectFromToken reads the "sub" claim of a bearer credential without
// verifying its signature. The client never holds the signing key; the
// subject is only used to label events sent back to the same service that
// issued the credential, which performs its own verification.
//
// Example usage:
//
//	userID, err := utils.SubjectFromToken(token)
//	if err != nil {
//	    userID = "me"
//	}
func SubjectFromToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrNoSubject
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sub) == "" {
		return "", ErrNoSubject
	}

	return sub, nil
}
