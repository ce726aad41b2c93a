package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestRun_FullGrid(t *testing.T) {
	code, out, errOut := runCmd(t, "-size", "3", "-seed", "5", "-occupancy", "1")
	require.Equal(t, ExitOK, code, errOut)

	want := "" +
		"grid 3×3 seed 5 policy strict clusters 1\n" +
		"  0 1 2\n" +
		"0 2 2 2\n" +
		"1 2 2 2\n" +
		"2 2 2 2\n"
	assert.Equal(t, want, out)
	assert.Contains(t, errOut, "field built")
}

func TestRun_Steps(t *testing.T) {
	code, out, errOut := runCmd(t, "-size", "2", "-seed", "1", "-occupancy", "0", "-steps", "-log-level", "error")
	require.Equal(t, ExitOK, code, errOut)

	want := "" +
		"grid 2×2 seed 1 policy strict clusters 0\n" +
		"\nstep 0/0\n" +
		"  0 1\n" +
		"0 * *\n" +
		"1 * *\n"
	assert.Equal(t, want, out)
	assert.Empty(t, errOut)
}

func TestRun_StepsCount(t *testing.T) {
	code, out, _ := runCmd(t, "-size", "12", "-seed", "8", "-steps", "-log-level", "error")
	require.Equal(t, ExitOK, code)

	fields := strings.Fields(strings.SplitN(out, "\n", 2)[0])
	n, err := strconv.Atoi(fields[len(fields)-1])
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 1)
	assert.Equal(t, n+1, strings.Count(out, "\nstep "), "one block per step 0..%d", n)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  size: 2\n  occupancy: 1\n  policy: merge\nlog:\n  level: error\n"), 0o644))

	code, out, errOut := runCmd(t, "-config", path, "-seed", "3")
	require.Equal(t, ExitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "grid 2×2 seed 3 policy merge clusters 1\n"), out)
}

func TestRun_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CLUSTERFIELD_GRID_SIZE=1\nCLUSTERFIELD_LOG_LEVEL=error\n"), 0o644))

	code, out, errOut := runCmd(t, "-env-file", path, "-seed", "2", "-occupancy", "1")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "grid 1×1 seed 2 policy strict clusters 1\n  0\n0 2\n", out)
	assert.Empty(t, errOut)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"help", []string{"-h"}, ExitOK, "Usage: clusterfield"},
		{"unknown flag", []string{"-nope"}, ExitUsage, "flag provided but not defined"},
		{"extra args", []string{"grid"}, ExitUsage, "unexpected arguments"},
		{"zero size", []string{"-size", "0"}, ExitFailed, "config.grid.size must be at least 1"},
		{"bad policy", []string{"-policy", "greedy"}, ExitFailed, "config.grid.policy must be one of"},
		{"bad conn", []string{"-conn", "6"}, ExitFailed, "config.grid.connectivity"},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "x.yaml")}, ExitFailed, "x.yaml"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCmd(t, tc.args...)
			assert.Equal(t, tc.code, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tc.msg)
		})
	}
}
