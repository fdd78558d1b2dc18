package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunVersion(t *testing.T) {
	originalVersion, originalCommit := Version, Commit
	defer func() {
		Version, Commit = originalVersion, originalCommit
	}()

	Version = "1.2.3"
	Commit = "abc123"
	out := capture(versionCmd)

	runVersion(versionCmd, nil)

	for _, want := range []string{"formchart version 1.2.3", "Commit: abc123", "Go version:", "OS/Arch:"} {
		assert.Contains(t, out.String(), want)
	}
}
