package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warroom/war-server/internal/database"
)

func TestRegisterFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    RegisterForm
		ok      bool
		errKeys []string
	}{
		{
			name: "valid",
			form: RegisterForm{Username: "alice", Email: "alice@example.com", Password1: "pw", Password2: "pw"},
			ok:   true,
		},
		{
			name:    "missing username",
			form:    RegisterForm{Email: "alice@example.com", Password1: "pw", Password2: "pw"},
			errKeys: []string{"username"},
		},
		{
			name:    "bad email",
			form:    RegisterForm{Username: "alice", Email: "not-an-email", Password1: "pw", Password2: "pw"},
			errKeys: []string{"email"},
		},
		{
			name:    "missing email",
			form:    RegisterForm{Username: "alice", Password1: "pw", Password2: "pw"},
			errKeys: []string{"email"},
		},
		{
			name:    "password mismatch",
			form:    RegisterForm{Username: "alice", Password1: "pw", Password2: "other"},
			errKeys: []string{"password2"},
		},
		{
			name:    "missing password",
			form:    RegisterForm{Username: "alice"},
			errKeys: []string{"password1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.form.Errors = map[string]string{}
			assert.Equal(t, tc.ok, tc.form.Validate())
			for _, key := range tc.errKeys {
				assert.Contains(t, tc.form.Errors, key)
			}
		})
	}
}

func TestValidateNewUsername(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	got, err := ValidateNewUsername(ctx, store, "test-user")
	require.NoError(t, err)
	assert.Equal(t, "test-user", got)

	createTestUser(t, store, "test-user", "test@test.com", "password")

	_, err = ValidateNewUsername(ctx, store, "test-user")
	assert.ErrorIs(t, err, database.ErrUsernameTaken)

	// exact match only; a different case is a different username
	got, err = ValidateNewUsername(ctx, store, "Test-User")
	require.NoError(t, err)
	assert.Equal(t, "Test-User", got)
}
