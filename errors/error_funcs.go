package errors

import (
	"os"

	log "github.com/cloudposse/tokenicon/pkg/logger"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// CheckErrorAndPrint prints a formatted error to stderr.
func CheckErrorAndPrint(err error) {
	if err == nil {
		return
	}
	if _, printErr := os.Stderr.WriteString(Format(err, DefaultFormatterConfig()) + newline); printErr != nil {
		log.Error(printErr)
		log.Error(err)
	}
}

// CheckErrorPrintAndExit prints an error and exits with the exit code carried by the error.
func CheckErrorPrintAndExit(err error) {
	if err == nil {
		return
	}

	CheckErrorAndPrint(err)
	Exit(GetExitCode(err))
}

// Exit exits the program with the specified exit code.
func Exit(exitCode int) {
	OsExit(exitCode)
}
