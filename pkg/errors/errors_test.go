// TEST TYPE: Unit Tests
package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/enact/pkg/errors"
)

func TestErrorCodeMatching(t *testing.T) {
	err := errors.New(errors.ErrEnvNotFound, "could not find environment: myenv")

	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Equal(t, errors.ErrEnvNotFound, errors.GetErrorCode(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.Wrap(cause, errors.ErrScriptWrite, "failed to write temp script")

	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptWrite))
	assert.ErrorContains(t, err, "failed to write temp script")
	assert.ErrorContains(t, err, "permission denied")
}

func TestWrappedCodeSurvivesLayers(t *testing.T) {
	inner := errors.New(errors.ErrUnrenderableValue, "csh cannot represent values containing newlines")
	outer := fmt.Errorf("rendering activation: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrUnrenderableValue))
}

func TestDetailsAppearInError(t *testing.T) {
	err := errors.Newf(errors.ErrEnvNotFound, "could not find environment: %s", "myenv").
		WithDetail("name", "myenv")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvNotFound))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}
