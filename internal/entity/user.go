package entity

import "errors"

var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID           string
	Email        string
	PasswordHash string
}

// UserInfo is the listing projection of a user, without credentials.
type UserInfo struct {
	ID    string
	Email string
}

// RegisterResult reports the outcome of a registration attempt.
// AlreadyExists is set when the email was taken and no row was
// inserted; UserID is empty in that case.
type RegisterResult struct {
	UserID        string
	AlreadyExists bool
}

// AuthStatus is the outcome of an authentication attempt. A missing
// user and a wrong password are distinct outcomes so that callers can
// present distinct messaging.
type AuthStatus int

const (
	AuthStatusUnknown AuthStatus = iota
	AuthStatusAuthenticated
	AuthStatusWrongPassword
	AuthStatusNoSuchUser
)

func (s AuthStatus) String() string {
	switch s {
	case AuthStatusAuthenticated:
		return "authenticated"
	case AuthStatusWrongPassword:
		return "wrong-password"
	case AuthStatusNoSuchUser:
		return "no-such-user"
	default:
		return "unknown"
	}
}

// AuthResult carries the status and, when authenticated, the user id.
type AuthResult struct {
	Status AuthStatus
	UserID string
}
