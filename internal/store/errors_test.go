package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntitySpecificErrorsWrapGenerics(t *testing.T) {
	t.Parallel()

	notFound := []error{
		ErrUserNotFound,
		ErrProgressNotFound,
		ErrQuestionNotFound,
		ErrAttemptNotFound,
	}
	for _, err := range notFound {
		assert.ErrorIs(t, err, ErrNotFound, "%v", err)
		assert.True(t, IsNotFoundError(err))
	}

	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	assert.False(t, IsNotFoundError(ErrEmailExists))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewStoreError("learner_progress", "save", cause)

	assert.Equal(t, "save operation on learner_progress failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.ErrorAs(t, error(err), &storeErr)
	assert.Equal(t, "learner_progress", storeErr.Entity)
}

func TestStoreErrorWrapsSentinels(t *testing.T) {
	t.Parallel()

	err := NewStoreError("user", "get", ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, IsNotFoundError(err))
}
