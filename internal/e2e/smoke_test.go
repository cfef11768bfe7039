package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runPrep(t, binaryPath, home, "topic", "toggle", "quant", "percentage")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runPrep(t, binaryPath, home, "todo", "add", "Write", "essay")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPrep(t, binaryPath, home, "progress")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1 / 6 topics completed")

	stdout, stderr, err = runPrep(t, binaryPath, home, "todo", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "[ ] Write essay")
}

func TestSmokeSQLiteBackend(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	env := []string{"PREP_STORAGE_BACKEND=sqlite"}

	_, stderr, err := runPrepEnv(t, binaryPath, home, env, "tab", "todo")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPrepEnv(t, binaryPath, home, env, "tab")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "todo\n", stdout)

	_, err = os.Stat(filepath.Join(home, ".prep", "prep.db"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "prep-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/prep")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build prep binary: %s", string(output))
	return binaryPath
}

func runPrep(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	return runPrepEnv(t, binaryPath, home, nil, args...)
}

func runPrepEnv(t *testing.T, binaryPath, home string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(append(os.Environ(), "HOME="+home), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
