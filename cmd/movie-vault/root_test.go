package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandStructure(t *testing.T) {
	cmd := newRootCommand()

	require.Equal(t, "movie-vault", cmd.Use)
	require.True(t, cmd.SilenceUsage)
	require.True(t, cmd.SilenceErrors)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	require.Contains(t, names, "serve")
	require.Contains(t, names, "import")
	require.Contains(t, names, "list")
}

func TestImportCommandAcceptsOptionalPath(t *testing.T) {
	cmd := newImportCommand()

	require.Equal(t, "import [path]", cmd.Use)
	require.NoError(t, cmd.Args(cmd, nil))
	require.NoError(t, cmd.Args(cmd, []string{"/data/movies"}))
	require.Error(t, cmd.Args(cmd, []string{"one", "two"}))
}

func TestAcquireImportLockRejectsSecondHolder(t *testing.T) {
	lockPath := filepath.Join(t.TempDir(), "import.lock")

	release, err := acquireImportLock(lockPath)
	require.NoError(t, err)

	_, err = acquireImportLock(lockPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already running")

	require.NoError(t, release())

	release, err = acquireImportLock(lockPath)
	require.NoError(t, err)
	require.NoError(t, release())
}

func TestListCommandFlags(t *testing.T) {
	cmd := newListCommand()

	require.NotNil(t, cmd.Flags().Lookup("title"))
	limit := cmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	require.Equal(t, "100", limit.DefValue)
}
