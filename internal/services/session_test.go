package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateSession_EmptyToken(t *testing.T) {
	userID, ok, err := ValidateSession("")
	assert.Equal(t, uuid.Nil, userID)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestRefreshSession_EmptyToken(t *testing.T) {
	assert.Error(t, RefreshSession(""))
}

func TestInvalidateSession_EmptyToken(t *testing.T) {
	assert.NoError(t, InvalidateSession(""))
}
