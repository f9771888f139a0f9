package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("learner@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "learner@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	testCases := []struct {
		name     string
		email    string
		password string
		expected error
	}{
		{
			name:     "empty email",
			email:    "",
			password: "correct horse battery",
			expected: ErrEmptyEmail,
		},
		{
			name:     "malformed email",
			email:    "not-an-email",
			password: "correct horse battery",
			expected: ErrInvalidEmail,
		},
		{
			name:     "password too short",
			email:    "learner@example.com",
			password: "short",
			expected: ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			email:    "learner@example.com",
			password: strings.Repeat("x", 73),
			expected: ErrPasswordTooLong,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tc.email, tc.password)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext, only a hash.
	user := &User{
		ID:             uuid.New(),
		Email:          "learner@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyHashedPassword)
}
