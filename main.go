package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/cloudposse/tokenicon/cmd"
	errUtils "github.com/cloudposse/tokenicon/errors"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/version"
)

func main() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		// Exit with the POSIX code for the signal (128 + signal number).
		if s, ok := sig.(syscall.Signal); ok {
			errUtils.OsExit(128 + int(s))
		}
		errUtils.OsExit(130)
	}()

	errUtils.OsExit(run(os.Args))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	if hasVersionFlag(args) {
		fmt.Fprintf(os.Stdout, "tokenicon %s on %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
		return 0
	}

	if err := cmd.Execute(); err != nil {
		formatted := errUtils.Format(err, errUtils.DefaultFormatterConfig())
		os.Stderr.WriteString(formatted + "\n")

		exitCode := errUtils.GetExitCode(err)
		log.Debug("Exiting with exit code", "code", exitCode)
		return exitCode
	}
	return 0
}

// hasVersionFlag reports whether --version is the first argument.
func hasVersionFlag(args []string) bool {
	return len(args) > 1 && args[1] == "--version"
}
