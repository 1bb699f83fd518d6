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
	programPath, err := writeProgramFixture(home)
	require.NoError(t, err)

	stdout, stderr, err := runDP(t, binaryPath, home, "catalog", "import", programPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Imported Minor: 3 courses")

	_, stderr, err = runDP(t, binaryPath, home,
		"plan", "new", "--name", "Smoke", "--start-year", "2024", "--end-year", "2025")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runDP(t, binaryPath, home, "plan", "add", "STAT100", "--semester", "Fall 2024")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runDP(t, binaryPath, home, "plan", "add", "STAT200", "--semester", "Fall 2024")
	require.Error(t, err)
	assert.Contains(t, stderr, "cannot place STAT200 in Fall 2024: prerequisites-unmet")

	stdout, stderr, err = runDP(t, binaryPath, home, "plan", "export")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "# Plan: Smoke\nFall 2024 (3 credits)\n  STAT100\nSpring 2025 (0 credits)\n", stdout)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "dp-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/dp")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build dp binary: %s", string(output))
	return binaryPath
}

func runDP(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Dir = home

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

func writeProgramFixture(home string) (string, error) {
	program := `name = "Minor"

[[courses]]
code = "STAT100"
credits = 3

[[courses]]
code = "STAT200"
credits = 3
prerequisites = "STAT100"

[[courses]]
code = "STAT300"
credits = 4
prerequisites = [["STAT200"]]

[requirements]
total_credits = 10

[[requirements.areas]]
name = "Statistics"
kind = "core"
min_credits = 10
courses = ["STAT100", "STAT200", "STAT300"]
`

	path := filepath.Join(home, "minor.toml")
	return path, os.WriteFile(path, []byte(program), 0o644)
}
