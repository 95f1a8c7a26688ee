package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsInnerCode(t *testing.T) {
	inner := DatabaseError("insert failed", stderrors.New("disk full"))
	err := Wrap(inner, "failed to mirror dataset")

	assert.Equal(t, CodeDatabaseError, GetCode(err))
	assert.Equal(t, "failed to mirror dataset: insert failed: disk full", err.Error())
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Equal(t, CodeInternalError, GetCode(Wrap(stderrors.New("boom"), "ctx")))
}

func TestWrapf(t *testing.T) {
	err := Wrapf(InvalidInput("bad age"), "row %d", 3)
	assert.Equal(t, "row 3: bad age", err.Error())
	assert.Nil(t, Wrapf(nil, "row %d", 3))
}

func TestWithCodeAndHasCode(t *testing.T) {
	err := WithCode(CodeUnauthorized, fmt.Errorf("plain"))
	assert.Equal(t, CodeUnauthorized, GetCode(err))

	wrapped := fmt.Errorf("handler: %w", Wrap(NotFound("session"), "lookup"))
	assert.True(t, HasCode(wrapped, CodeNotFound))
	assert.False(t, HasCode(wrapped, CodeIOError))
	assert.Equal(t, CodeNotFound, GetCode(wrapped))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	sentinel := Unauthorized("Invalid credentials. Please try again.")
	err := Wrap(Unauthorized("Invalid credentials. Please try again."), "login")

	assert.True(t, stderrors.Is(err, sentinel))
	assert.True(t, stderrors.Is(err, &AppError{Code: CodeUnauthorized}))
	assert.False(t, stderrors.Is(err, Unauthorized("Please enter credentials and press submit.")))
	assert.False(t, stderrors.Is(err, NotFound("x")))
}
