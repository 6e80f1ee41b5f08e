package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/api/internal/models"
	"miniblog/api/internal/seed"
)

func TestAuthenticateOwner(t *testing.T) {
	identity := NewIdentityStore(seed.Accounts())

	acc, err := identity.Authenticate("owner", "owner123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleOwner, acc.Role())
}

func TestAuthenticateUniformFailure(t *testing.T) {
	identity := NewIdentityStore(seed.Accounts())

	_, wrongPassword := identity.Authenticate("owner", "nope")
	_, unknownUser := identity.Authenticate("nobody", "owner123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser, "failure must not leak its cause")
}

func TestAuthenticateIsCaseSensitive(t *testing.T) {
	identity := NewIdentityStore(seed.Accounts())

	_, err := identity.Authenticate("owner", "OWNER123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = identity.Authenticate("Owner", "owner123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateEmptyFields(t *testing.T) {
	identity := NewIdentityStore(seed.Accounts())

	_, err := identity.Authenticate("", "owner123")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = identity.Authenticate("owner", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProfileOwnAccountOnly(t *testing.T) {
	identity := NewIdentityStore(seed.Accounts())
	bio := "updated bio"
	linked := true

	_, err := identity.UpdateProfile("user1", "user2", models.ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = identity.UpdateProfile("", "", models.ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	updated, err := identity.UpdateProfile("user1", "user1", models.ProfileUpdate{Bio: &bio, GitHub: &linked})
	require.NoError(t, err)
	assert.Equal(t, "updated bio", updated.Bio)
	assert.True(t, updated.OAuth.GitHub)
	assert.True(t, updated.OAuth.Google, "unmentioned fields stay untouched")

	stored, err := identity.GetByID("user1")
	require.NoError(t, err)
	assert.Equal(t, "updated bio", stored.Bio)
}

func TestSeedInvariants(t *testing.T) {
	assert.Panics(t, func() {
		NewIdentityStore([]models.Account{
			{ID: "a", Username: "dup"},
			{ID: "b", Username: "dup"},
		})
	})
	assert.Panics(t, func() {
		NewIdentityStore([]models.Account{
			{ID: "a", Username: "one", IsOwner: true},
			{ID: "b", Username: "two", IsOwner: true},
		})
	})
}
