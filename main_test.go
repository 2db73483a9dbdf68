package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", []string{"tokenicon"}, false},
		{"version flag first", []string{"tokenicon", "--version"}, true},
		{"version flag later", []string{"tokenicon", "resolve", "--version"}, false},
		{"version subcommand", []string{"tokenicon", "version"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasVersionFlag(tt.args))
		})
	}
}

func TestRun_VersionFlag(t *testing.T) {
	assert.Equal(t, 0, run([]string{"tokenicon", "--version"}))
}
