package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	assert.Equal(t, ROLE_USER, user.Role)
	assert.NotEqual(t, "wonderland", user.Password)
	assert.True(t, user.CheckPassword("wonderland"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestUserValidate(t *testing.T) {
	valid := User{Username: "alice", Email: "alice@example.com", Password: "hash", Role: ROLE_USER}
	assert.NoError(t, valid.Validate())

	tooShort := valid
	tooShort.Username = "ab"
	assert.Error(t, tooShort.Validate())

	tooLong := valid
	tooLong.Username = strings.Repeat("a", 81)
	assert.Error(t, tooLong.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())

	longEmail := valid
	longEmail.Email = strings.Repeat("a", 115) + "@example.com"
	assert.Error(t, longEmail.Validate())

	badRole := valid
	badRole.Role = "SUPERVISOR"
	assert.Error(t, badRole.Validate())
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "wonderland")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("replacement"))
	assert.False(t, user.CheckPassword("wonderland"))
	assert.True(t, user.CheckPassword("replacement"))
}

func TestIsAdmin(t *testing.T) {
	user := User{Role: ROLE_USER}
	assert.False(t, user.IsAdmin())

	user.Role = ROLE_ADMIN
	assert.True(t, user.IsAdmin())
}
