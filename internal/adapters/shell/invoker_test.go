package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/shell"
	"go.trai.ch/cbuild/internal/core/domain"
)

// writeScript creates an executable shell script in dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	//nolint:gosec // Test requires executable file
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))
	return path
}

func TestInvoker_Invoke_Success(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "ok.sh", "echo hello")

	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: script,
		Dir:        dir,
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.Empty(t, result.Stderr)
	assert.True(t, result.Succeeded())
}

func TestInvoker_Invoke_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		failure  bool
	}{
		{name: "zero with warnings", body: "echo 'warning: unused' >&2; exit 0", wantCode: 0},
		{name: "one", body: "echo 'error: expected ;' >&2; exit 1", wantCode: 1, failure: true},
		{name: "three", body: "exit 3", wantCode: 3},
		{name: "two hundred", body: "exit 200", wantCode: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			script := writeScript(t, dir, "run.sh", tt.body)

			result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
				Executable: script,
				Dir:        dir,
			}, nil, nil)
			require.NoError(t, err, "a non-zero exit is not an invoker error")

			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.Equal(t, tt.failure, result.IsFailure())
		})
	}
}

func TestInvoker_Invoke_SeparateStreams(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "streams.sh", "echo out1; echo err1 >&2; echo out2; echo err2 >&2")

	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: script,
		Dir:        dir,
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "out1\nout2\n", result.Stdout)
	assert.Equal(t, "err1\nerr2\n", result.Stderr)
}

func TestInvoker_Invoke_PassesArgsAndDir(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "args.sh", `echo "$@"; pwd`)

	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: script,
		Args:       []string{"-g", "a.c", "b.c"},
		Dir:        dir,
	}, nil, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result.Stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "-g a.c b.c", lines[0])

	wantDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(lines[1])
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
}

func TestInvoker_Invoke_TeesToSinks(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "tee.sh", "echo hello to stdout; echo hello to stderr >&2")

	var stdout, stderr bytes.Buffer
	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: script,
		Dir:        dir,
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, result.Stdout, stdout.String())
	assert.Equal(t, result.Stderr, stderr.String())
	assert.Contains(t, stdout.String(), "hello to stdout")
	assert.Contains(t, stderr.String(), "hello to stderr")
}

func TestInvoker_Invoke_LargeOutput(t *testing.T) {
	dir := t.TempDir()
	// Enough output on both streams to fill a pipe buffer if either were left undrained.
	script := writeScript(t, dir, "large.sh",
		"i=0; while [ $i -lt 5000 ]; do echo \"line $i\"; echo \"warn $i\" >&2; i=$((i+1)); done")

	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: script,
		Dir:        dir,
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 5000, strings.Count(result.Stdout, "\n"))
	assert.Equal(t, 5000, strings.Count(result.Stderr, "\n"))
}

func TestInvoker_Invoke_MissingExecutable(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "a.out")

	result, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: missing,
		Dir:        dir,
	}, nil, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorContains(t, err, domain.ErrProcessStartFailed.Error())
}

func TestInvoker_Invoke_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.out")
	require.NoError(t, os.WriteFile(path, []byte("not a program"), 0o600))

	_, err := shell.NewInvoker().Invoke(context.Background(), domain.Invocation{
		Executable: path,
		Dir:        dir,
	}, nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrProcessStartFailed.Error())
}

func TestInvoker_Invoke_Canceled(t *testing.T) {
	dir := t.TempDir()
	script := writeScript(t, dir, "sleep.sh", "exec sleep 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := shell.NewInvoker().Invoke(ctx, domain.Invocation{
		Executable: script,
		Dir:        dir,
	}, nil, nil)
	require.Error(t, err)
}
