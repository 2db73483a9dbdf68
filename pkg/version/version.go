package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time with -ldflags "-X github.com/cloudposse/tokenicon/pkg/version.Version=...".
var Version = "0.0.0-dev"

// UserAgent is sent with every icon download.
func UserAgent() string {
	return fmt.Sprintf("tokenicon/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
