package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runfalk/typed-ctypes/internal/gen"
)

const testManifest = `types:
  - suffix: u8
    ctype: uint8_t
    gotype: uint8
  - suffix: f64
    ctype: double
    gotype: float64
`

func writeTestManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testManifest), 0o644))
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestGenerateWritesSources(t *testing.T) {
	manifest := writeTestManifest(t)
	out := t.TempDir()

	require.NoError(t, runCommand(t, "generate", "--manifest", manifest, "--out", out))

	assert.FileExists(t, filepath.Join(out, gen.HeaderPath))
	assert.FileExists(t, filepath.Join(out, gen.ExportsPath))
	assert.FileExists(t, filepath.Join(out, gen.HarnessPath))

	header, err := os.ReadFile(filepath.Join(out, gen.HeaderPath))
	require.NoError(t, err)
	assert.Contains(t, string(header), "void swap_u8_tuple(u8_tuple *s);")
	assert.Contains(t, string(header), "double sub_f64(double x, double y);")
}

func TestGenerateCheckDetectsDrift(t *testing.T) {
	manifest := writeTestManifest(t)
	out := t.TempDir()

	// Check before anything is written reports every file as stale.
	err := runCommand(t, "generate", "--manifest", manifest, "--out", out, "--check")
	require.ErrorContains(t, err, "out of date")

	require.NoError(t, runCommand(t, "generate", "--manifest", manifest, "--out", out))
	require.NoError(t, runCommand(t, "generate", "--manifest", manifest, "--out", out, "--check"))

	require.NoError(t, os.WriteFile(filepath.Join(out, gen.HarnessPath), []byte("tampered\n"), 0o644))
	err = runCommand(t, "generate", "--manifest", manifest, "--out", out, "--check")
	require.ErrorContains(t, err, gen.HarnessPath)
}

func TestGenerateRejectsInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(path, []byte("types: []\n"), 0o644))

	err := runCommand(t, "generate", "--manifest", path, "--out", t.TempDir())
	require.ErrorContains(t, err, "no types")
}

func TestGenerateRejectsPositionalArgs(t *testing.T) {
	err := runCommand(t, "generate", "extra")
	require.Error(t, err)
}
