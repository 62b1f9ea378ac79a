package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Registration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"add", "list", "exit", "export", "refresh"} {
		assert.True(t, names[want], "command %q not registered", want)
	}
}
