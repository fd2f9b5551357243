package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(errors.New("connection refused"))
	require.NotNil(t, appErr)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "connection refused", appErr.Cause())
}

func TestFromErrorKeepsTyped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Clone(ErrUnauthorized, "invalid token"))
	appErr := FromError(wrapped)
	assert.Equal(t, ErrUnauthorized.Code, appErr.Code)
	assert.Equal(t, "invalid token", appErr.Cause())
}

func TestWithFieldsDoesNotMutateSentinel(t *testing.T) {
	withFields := WithFields(ErrValidation, map[string]string{"age": "La edad mínima es 3 años"})
	assert.Len(t, withFields.Fields, 1)
	assert.Nil(t, ErrValidation.Fields)
}
