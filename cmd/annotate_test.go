package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	corenlpHome = ""

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_TooFewArguments(t *testing.T) {
	_, stderr, err := execute(t, "run", "./only-input")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
	assert.Contains(t, stderr, "Usage:")
}

func TestRun_MissingHome(t *testing.T) {
	t.Setenv("CORENLP_HOME", "")

	_, _, err := execute(t, "run", t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corenlp home is not set")
}

func TestRun_MissingInputDir(t *testing.T) {
	t.Setenv("CORENLP_HOME", "/opt/corenlp")

	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "absent"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input directory")
}

func TestRun_EmptyInputDir(t *testing.T) {
	t.Setenv("CORENLP_HOME", "/opt/corenlp")

	_, _, err := execute(t, "run", t.TempDir(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input files")
}
