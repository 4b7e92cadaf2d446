package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statline-dev/statline/internal/gl"
	"github.com/statline-dev/statline/internal/hierarchy"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "statline-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "statline")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/statline")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runStatline(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	for _, f := range []string{
		"statline.yaml",
		filepath.Join("data", "accounts.csv"),
		filepath.Join("data", "gl-history.csv"),
		filepath.Join("data", "statement.yaml"),
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, "file %s should exist", f)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir, "--name", "My Company")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "statline.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: My Company")
	assert.Contains(t, contents, "dir: data")
	assert.Contains(t, contents, "cache_ttl_seconds: 300")
}

func TestInit_Accounts(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "data", "accounts.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := gl.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, 11, "starter chart has 11 accounts")
}

func TestInit_EmptyHistory(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "data", "gl-history.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := gl.ReadHistory(f)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInit_Hierarchy(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	chart, err := hierarchy.Load(filepath.Join(dir, "data", "statement.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, chart.Rows)
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runStatline(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}
