package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewConfigError("config", "loco.yaml", "read config file", cause)
	assert.ErrorIs(t, err, ErrMissingConfig)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsConfigError(err))
	assert.False(t, IsGenerationError(err))
	assert.Contains(t, err.Error(), `loco: config error for "config"`)
	assert.Contains(t, err.Error(), "loco.yaml")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewGenerationError("write", "user.go", "create file", cause)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsGenerationError(err))
	assert.False(t, IsConfigError(err))
	assert.Contains(t, err.Error(), "phase write")
	assert.Contains(t, err.Error(), "user.go")
	assert.Contains(t, err.Error(), "disk full")
}
