package sync

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func TestSyncRepoRequiresRepo(t *testing.T) {
	err := SyncRepo(t.TempDir(), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNotRepo)
}

func TestInitRepoCreatesRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	var out bytes.Buffer

	require.False(t, IsRepo(dir))
	require.NoError(t, InitRepo(dir, "", &out))
	assert.True(t, IsRepo(dir))
	assert.Contains(t, out.String(), "Initialized content repository")
	assert.Contains(t, out.String(), "No remote specified")

	// Second init keeps the repository and only reports the missing remote.
	out.Reset()
	require.NoError(t, InitRepo(dir, "", &out))
	assert.NotContains(t, out.String(), "Initialized")
}

func TestInitRepoSetsRemote(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, InitRepo(dir, "https://example.com/content.git", &out))
	require.NoError(t, InitRepo(dir, "https://example.com/other.git", &out))

	got, err := exec.Command("git", "-C", dir, "remote", "get-url", "origin").Output()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/other.git\n", string(got))
}
