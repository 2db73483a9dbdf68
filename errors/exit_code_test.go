package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"plain error", ErrTokenNotFound, 1},
		{"attached code", WithExitCode(ErrTokenNotFound, ExitCodeNotFound), ExitCodeNotFound},
		{"wrapped attached code", fmt.Errorf("outer: %w", WithExitCode(ErrLoadConfig, ExitCodeConfig)), ExitCodeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestWithExitCode_Nil(t *testing.T) {
	assert.NoError(t, WithExitCode(nil, 2))
}

func TestExit_UsesOsExit(t *testing.T) {
	original := OsExit
	defer func() { OsExit = original }()

	var got int
	OsExit = func(code int) { got = code }

	CheckErrorPrintAndExit(WithExitCode(ErrTokenNotFound, ExitCodeNotFound))
	assert.Equal(t, ExitCodeNotFound, got)
}
