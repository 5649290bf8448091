package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinDate time.Time `json:"joinDate"`
}

// Credential is the stored signup record. The password is kept as
// entered; the credential store is an explicit mock and performs no
// hashing.
type Credential struct {
	User
	Password string `json:"password"`
}

// Session identifies an authenticated user for the duration of a
// login. Every store and aggregator call receives the user identity
// through a Session rather than reading ambient state.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinDate  time.Time `json:"joinDate"`
	CreatedAt time.Time `json:"createdAt"`
}
