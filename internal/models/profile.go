package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is one account. Role and ban state are only ever mutated by
// admin actions.
type Profile struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	BannedUntil  *time.Time `db:"banned_until" json:"banned_until"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// IsBanned reports whether the profile carries a ban that has not yet expired.
func (p *Profile) IsBanned(now time.Time) bool {
	return p.BannedUntil != nil && p.BannedUntil.After(now)
}

// IsAdmin reports whether the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
