package testcards_test

import (
	"errors"
	"testing"

	"github.com/mbazin/testcards"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := testcards.Errorf(testcards.ENOTFOUND, "category %q not found", "Visa")

	assert.Equal(t, testcards.ENOTFOUND, testcards.ErrorCode(err))
	assert.Equal(t, "category \"Visa\" not found", testcards.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, testcards.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, testcards.EINTERNAL, testcards.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, testcards.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", testcards.ErrorMessage(errors.New("boom")))
}
