package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manav03panchal/habitflare/internal/errors"
)

func TestUserError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := errors.NewUserError("Habit name cannot be empty", "Provide a name")
		assert.Equal(t, "Habit name cannot be empty", err.Error())
	})

	t.Run("field context appears in message", func(t *testing.T) {
		err := errors.NewUserErrorWithField("frequency", "9", "Invalid weekday index", "Use 0-6")
		assert.Equal(t, "Invalid weekday index: '9'", err.Error())
	})
}

func TestIsUserError(t *testing.T) {
	ue := errors.NewUserError("bad input", "")
	assert.True(t, errors.IsUserError(ue))
	assert.True(t, errors.IsUserError(fmt.Errorf("wrapped: %w", ue)))
	assert.False(t, errors.IsUserError(stderrors.New("plain")))
	assert.False(t, errors.IsUserError(nil))
}

func TestSystemError(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.NewSystemErrorWithOp("habit create", "storage write failed", cause)

	assert.Equal(t, "storage write failed during habit create", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestFormatForUser(t *testing.T) {
	t.Run("nil is empty", func(t *testing.T) {
		assert.Empty(t, errors.FormatForUser(nil))
	})

	t.Run("user error includes hint", func(t *testing.T) {
		err := errors.NewUserError("Habit not found", "Run 'habitflare list' to see your habits")
		got := errors.FormatForUser(err)
		assert.Contains(t, got, "Habit not found")
		assert.Contains(t, got, "hint: Run 'habitflare list'")
	})

	t.Run("user error without suggestion has no hint line", func(t *testing.T) {
		err := errors.NewUserError("Habit not found", "")
		assert.Equal(t, "Habit not found", errors.FormatForUser(err))
	})

	t.Run("system errors pass through", func(t *testing.T) {
		assert.Equal(t, "boom", errors.FormatForUser(stderrors.New("boom")))
	})
}
