package devhelper_test

import (
	"errors"
	"testing"

	// Packages
	devhelper "github.com/mutablelogic/go-devhelper"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)

	// Wrapped errors keep their code
	err := devhelper.ErrUnavailable.Withf("calculator: %v", "connection refused")
	assert.True(errors.Is(err, devhelper.ErrUnavailable))
	assert.False(errors.Is(err, devhelper.ErrToolFailed))
	assert.Equal("tool executor unavailable: calculator: connection refused", err.Error())
}

func Test_error_002(t *testing.T) {
	assert := assert.New(t)

	// Unknown codes still stringify
	assert.Equal("error code 99", devhelper.Err(99).Error())
	assert.Equal("iteration limit reached", devhelper.ErrMaxIterations.Error())
}
