package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProfile_IsBanned(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := &Profile{}
	assert.False(t, p.IsBanned(now))

	future := now.Add(24 * time.Hour)
	p.BannedUntil = &future
	assert.True(t, p.IsBanned(now))

	// An expired ban no longer counts.
	past := now.Add(-time.Minute)
	p.BannedUntil = &past
	assert.False(t, p.IsBanned(now))
}

func TestProfile_IsAdmin(t *testing.T) {
	assert.True(t, (&Profile{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&Profile{Role: RoleUser}).IsAdmin())
	assert.False(t, (&Profile{}).IsAdmin())
}

func TestProfile_PasswordHashNeverSerialized(t *testing.T) {
	p := &Profile{Email: "a@b.ch", PasswordHash: "$argon2id$secret"}
	body, err := json.Marshal(p)
	assert.NoError(t, err)
	assert.NotContains(t, string(body), "argon2id")
}
