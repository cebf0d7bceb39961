package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alkime/itranscript/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	err := validation.New("name", "Patient name is required")
	assert.Equal(t, "name: Patient name is required", err.Error())

	bare := validation.New("", "Both fields are required.")
	assert.Equal(t, "Both fields are required.", bare.Error())

	formatted := validation.Newf("file", "unsupported type %q", "text/plain")
	assert.Equal(t, `unsupported type "text/plain"`, formatted.Message)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("create patient: %w", validation.New("age", "Age is required"))

	verr, ok := validation.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "age", verr.Field)

	_, ok = validation.As(errors.New("boom"))
	assert.False(t, ok)

	_, ok = validation.As(nil)
	assert.False(t, ok)
}
