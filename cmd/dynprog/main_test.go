package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dynprog/internal/config"
	"github.com/katalvlaran/dynprog/knapsack"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runWithLog(t, "", args...)
	return stdout, err
}

// runWithLog executes the command tree at the given DYNPROG_LOG_LEVEL and
// returns stdout and stderr.
func runWithLog(t *testing.T, level string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"DYNPROG_MAX_CAPACITY", "DYNPROG_MAX_SEQUENCE", "DYNPROG_MAX_CELLS"} {
		t.Setenv(k, "")
	}
	t.Setenv("DYNPROG_LOG_LEVEL", level)

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	envFile := filepath.Join(t.TempDir(), "none.env")
	root.SetArgs(append([]string{"--env-file", envFile}, args...))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestKnapsackCmd(t *testing.T) {
	out, err := run(t, "knapsack", "--capacity", "15", "--items", "[[10,7],[9,8],[5,6]]")
	require.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, err = run(t, "knapsack", "--capacity", "25",
		"--items", `[{"weight":10,"value":2},{"weight":29,"value":10},{"weight":5,"value":7},{"weight":5,"value":3},{"weight":5,"value":1},{"weight":24,"value":12}]`)
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)
}

func TestKnapsackCmd_Select(t *testing.T) {
	out, err := run(t, "knapsack", "--capacity", "15", "--items", "[[10,7],[9,8],[5,6]]", "--select")
	require.NoError(t, err)
	assert.Equal(t, "value=14 weight=14 indices=[1 2]\n", out)
}

func TestKnapsackCmd_Defaults(t *testing.T) {
	out, err := run(t, "knapsack")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestKnapsackCmd_Invalid(t *testing.T) {
	_, err := run(t, "knapsack", "--capacity=-1")
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = run(t, "knapsack", "--items", "[[1,")
	assert.Error(t, err)

	_, err = run(t, "knapsack", "--capacity", "5", "--items", "[[-1,2]]")
	assert.ErrorIs(t, err, knapsack.ErrNegativeWeight)
}

func TestLCSCmd(t *testing.T) {
	out, err := run(t, "lcs", "WHOWEEKLY", "HOWONLY")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "lcs", "ABCD", "AXBXDX", "--show")
	require.NoError(t, err)
	assert.Equal(t, "3\nABD\n", out)

	_, err = run(t, "lcs", "only-one")
	assert.Error(t, err)
}

func TestLPSCmd(t *testing.T) {
	out, err := run(t, "lps", "BxAoNxAoNxA")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "lps", "TACOCAT", "--show")
	require.NoError(t, err)
	assert.Equal(t, "7\nTACOCAT\n", out)

	out, err = run(t, "lps", "ABA", "--table")
	require.NoError(t, err)
	assert.Equal(t, "3\n[1 1 3]\n[0 1 1]\n[0 0 1]\n", out)

	out, err = run(t, "lps", "")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestRoot_BadConfig(t *testing.T) {
	t.Setenv("DYNPROG_MAX_CAPACITY", "nope")

	var stdout bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--env-file", filepath.Join(t.TempDir(), "none.env"), "lcs", "A", "B"})

	assert.Error(t, root.Execute())
	assert.Empty(t, stdout.String())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "14", formatValue(14))
	assert.Equal(t, "3.75", formatValue(3.75))
}

func TestRoot_DebugLogToStderr(t *testing.T) {
	out, logs, err := runWithLog(t, "debug", "lcs", "ABCD", "BD")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
	assert.Contains(t, logs, `"msg":"lcs"`)
	assert.Contains(t, logs, `"length":2`)

	_, logs, err = runWithLog(t, "info", "lcs", "ABCD", "BD")
	require.NoError(t, err)
	assert.NotContains(t, logs, `"msg":"lcs"`)
}

func TestRoot_BadLogLevel(t *testing.T) {
	out, _, err := runWithLog(t, "verbose", "lps", "ABA")
	assert.ErrorIs(t, err, config.ErrInvalidValue)
	assert.Empty(t, out)
}
