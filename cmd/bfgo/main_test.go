package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/bfgo/errz"
)

func writeProgram(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.bf")
	require.Nil(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestRootCmdRequiresFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.NotNil(t, cmd.Execute())
}

func TestRunUnderflowFault(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{writeProgram(t, "<")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrUnderflow))
}

func TestRunCompileError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{writeProgram(t, "[[")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrSyntax))
}

func TestRunMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope.bf")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.NotNil(t, cmd.Execute())
}

func TestDisCmd(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"dis", writeProgram(t, "+[-]")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	require.Nil(t, cmd.Execute())
}
