package handlers

import (
	"net/http"
	"testing"

	"github.com/freeauto/freeauto-backend/internal/apierr"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSignupStatus_DuplicateIsConflict(t *testing.T) {
	assert.Equal(t, http.StatusConflict, signupStatus(apierr.ErrDuplicateUser))
	assert.Equal(t, http.StatusInternalServerError, signupStatus(apierr.ErrDatabase))
	assert.Equal(t, http.StatusInternalServerError, signupStatus(apierr.ErrUnexpected))
}

func TestSignupStatus_ConcurrentDuplicateInsert(t *testing.T) {
	// A signup racing past the pre-check lands on the unique
	// constraint; that path must still answer 409, not 500.
	err := &pq.Error{Code: "23505", Constraint: "profiles_email_key"}
	assert.Equal(t, http.StatusConflict, signupStatus(apierr.Map(err)))
}
