package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/codex-k8s/intlist"
	"github.com/codex-k8s/intlist/internal/demo"
	"github.com/codex-k8s/intlist/internal/env"
)

func run(t *testing.T, vars env.Vars, args ...string) (string, string, error) {
	t.Helper()
	if vars == nil {
		vars = env.Vars{}
	}
	var stdout, stderr bytes.Buffer
	err := execute(args, nil, &Options{Environment: vars}, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestDefaultRun(t *testing.T) {
	stdout, _, err := run(t, nil)
	require.NoError(t, err)

	var want strings.Builder
	want.WriteString("Initial count: 0\nCount after adds: 20\n")
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&want, "Value at index %d: %d\n", i, 2*i)
	}
	assert.Equal(t, want.String(), stdout)
}

func TestYAMLOutput(t *testing.T) {
	stdout, _, err := run(t, nil, "--capacity", "2", "--count", "5", "-o", "yaml", "--allocator", "manual")
	require.NoError(t, err)

	var report demo.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, uint(5), report.Count)
	assert.Equal(t, uint(8), report.Capacity)
	assert.Equal(t, []int{0, 2, 4, 6, 8}, report.Values)
	assert.Len(t, report.Growth, 2)
}

func TestLogOutput(t *testing.T) {
	stdout, stderr, err := run(t, nil, "--count", "2", "--output", "log")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Value at index 1: 2")
}

func TestTrace(t *testing.T) {
	stdout, _, err := run(t, nil, "trace")
	require.NoError(t, err)
	assert.Equal(t,
		"grow at count 4: 4 -> 8\n"+
			"grow at count 8: 8 -> 16\n"+
			"grow at count 16: 16 -> 32\n"+
			"final capacity 32 for 20 values\n",
		stdout)
}

func TestEnvironmentAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "demo.env")
	require.NoError(t, os.WriteFile(envFile, []byte("INTLIST_CAPACITY=1\nINTLIST_COUNT=3\n"), 0o600))

	stdout, _, err := run(t, env.Vars{"INTLIST_COUNT": "4"}, "trace", "--env-file", envFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "final capacity 4 for 4 values")

	stdout, _, err = run(t, env.Vars{"INTLIST_COUNT": "4"}, "trace", "--env-file", envFile, "--count", "1")
	require.NoError(t, err)
	assert.Equal(t, "final capacity 1 for 1 values\n", stdout)
}

func TestFailuresExitWithError(t *testing.T) {
	_, stderr, err := run(t, nil, "--capacity", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, intlist.ErrInvalidCapacity)
	assert.Contains(t, stderr, "list operation failed")
	assert.Contains(t, stderr, "op=new")
	assert.Contains(t, stderr, "invalid capacity")

	_, stderr, err = run(t, nil, "--max-elems", "8")
	require.Error(t, err)
	assert.ErrorIs(t, err, intlist.ErrOutOfMemory)
	assert.Contains(t, stderr, "op=append")
	assert.Contains(t, stderr, "out of memory")

	_, _, err = run(t, nil, "--allocator", "arena")
	assert.Error(t, err)

	_, _, err = run(t, env.Vars{"INTLIST_COUNT": "x"})
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", stdout)
}
