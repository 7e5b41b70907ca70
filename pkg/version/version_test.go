package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-devhelper/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)
	assert.NotEmpty(version.Version())

	version.GitTag = "v1.2.3"
	defer func() { version.GitTag = "" }()
	assert.Equal("v1.2.3", version.Version())
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)
	var info version.Info
	assert.NoError(json.Unmarshal(version.JSON("devhelper"), &info))
	assert.Equal("devhelper", info.Name)
	assert.Equal(runtime.Version(), info.Compiler)
	assert.Equal(runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(info.Version)
}
