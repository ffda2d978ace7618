package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-08-28"

	out, err := runCommand(t, testAppContext(t), "version")
	require.NoError(t, err)
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2026-08-28")
}
