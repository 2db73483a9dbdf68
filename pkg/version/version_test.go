package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserAgent(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "1.2.3"
	assert.Equal(t, "tokenicon/1.2.3 ("+runtime.GOOS+"/"+runtime.GOARCH+")", UserAgent())
}
