package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a config file holding cfg and returns
// stdout, stderr, and the error.
func run(t *testing.T, cfg, stdin string, args ...string) (string, string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rpncalc.toml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", path}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEvalArgs(t *testing.T) {
	out, _, err := run(t, "", "", "2+3", "2+3*4", "(2+3)*4", "8-3-2")
	require.NoError(t, err)
	assert.Equal(t, "5\n14\n20\n3\n", out)
}

func TestEvalStdin(t *testing.T) {
	out, _, err := run(t, "", "1+1\n\n  2*3  \n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n", out)
}

func TestEvalInFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(in, []byte("10/4\n"), 0o644))
	out, _, err := run(t, "", "ignored\n", "--in", in, "1+1")
	require.NoError(t, err)
	assert.Equal(t, "2.5\n2\n", out)
}

func TestEvalMissingInFile(t *testing.T) {
	_, _, err := run(t, "", "", "--in", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestEvalFailures(t *testing.T) {
	out, _, err := run(t, "", "", "10/0", "1+1", "(1+2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "3: division by zero", lines[0])
	assert.Equal(t, "2", lines[1])
	assert.Equal(t, "1: open bracket ( with no close bracket", lines[2])
}

func TestEvalFormat(t *testing.T) {
	out, _, err := run(t, `format = "%.2f"`, "", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)

	out, _, err = run(t, `format = "%.2f"`, "", "--fmt", "%.4f", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.3333\n", out)
}

func TestEvalStrict(t *testing.T) {
	out, _, err := run(t, "", "", "2 $+ 3")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, _, err = run(t, "", "", "--strict", "2 $+ 3")
	require.Error(t, err)
	assert.Equal(t, "3: invalid character '$'\n", out)

	_, _, err = run(t, "strict = true", "", "2 $+ 3")
	assert.Error(t, err)
}

func TestEvalEcho(t *testing.T) {
	out, _, err := run(t, "", "", "--echo", "2+3*4")
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 * + : 14\n", out)
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "", "", "-v", "2+3", "1/0")
	require.Error(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `msg=evaluated expr=2+3`)
	assert.Contains(t, stderr, `msg="evaluation failed"`)

	_, stderr, err = run(t, "", "", "2+3")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestBadConfig(t *testing.T) {
	_, _, err := run(t, `format = "plain"`, "", "1")
	assert.Error(t, err)

	_, _, err = run(t, "", "", "--fmt", "plain", "1")
	assert.Error(t, err)

	out, _, err := run(t, "", "", "--fmt", "%d", "5")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestRPN(t *testing.T) {
	out, _, err := run(t, "", "", "rpn", "2+3*4", "(2+3)*4", "8-3-2")
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 * +\n2 3 + 4 *\n8 3 - 2 -\n", out)

	out, _, err = run(t, "", "1+2)\n", "rpn")
	require.Error(t, err)
	assert.Equal(t, "4: close bracket ) with no open bracket\n", out)
}
