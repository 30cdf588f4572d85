package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/dxfclean/internal/report"
	"github.com/jorge-barreto/dxfclean/internal/ux"
)

func TestMain(m *testing.M) {
	ux.Out = io.Discard
	os.Exit(m.Run())
}

const sample = "0\nSECTION\n2\nENTITIES\n0\nLINE\n8\n0\n0\nTEXT\n1\nx\n0\nENDSEC\n0\nEOF\n"

func run(args ...string) error {
	return newApp().Run(context.Background(), append([]string{"dxfclean"}, args...))
}

func TestClean_FlagsOverrideDefaults(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "part.dxf")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0644))
	out := filepath.Join(dir, "cleaned")

	err := run("clean",
		"--out-dir", out,
		"--suffix", "_c.dxf",
		"--template-dir", filepath.Join(dir, "none"),
		"--types", "LINE,TEXT",
		"--handle-base", "0x200",
		"--report",
		"--log-level", "error",
		input)
	require.NoError(t, err)

	path := filepath.Join(out, "part_c.dxf")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "0\nLINE\n5\n200\n")
	assert.Contains(t, string(data), "0\nTEXT\n5\n201\n")

	rep, err := report.Load(report.Path(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"LINE", "TEXT"}, rep.EntityTypes)
	assert.Len(t, rep.Warnings, 2)
}

func TestClean_JSONLogFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "part.dxf")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0644))
	logFile := filepath.Join(dir, "run.log")

	err := run("clean",
		"--out-dir", filepath.Join(dir, "out"),
		"--template-dir", filepath.Join(dir, "none"),
		"--log-format", "json",
		"--log-file", logFile,
		input)
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"cleaned drawing"`)
	assert.Contains(t, string(data), `"run_id":`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestFromDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/work", "h.txt"), fromDir("/work", "h.txt"))
	assert.Equal(t, "/abs/h.txt", fromDir("/work", "/abs/h.txt"))
	assert.Equal(t, "", fromDir("/work", ""))
}

func TestClean_ArgumentCount(t *testing.T) {
	for _, args := range [][]string{{"clean"}, {"clean", "a.dxf", "b.dxf"}} {
		err := run(args...)
		if err == nil || !strings.Contains(err.Error(), "exactly one input file") {
			t.Fatalf("%v: expected argument error, got %v", args, err)
		}
	}
}

func TestClean_MissingInput(t *testing.T) {
	dir := t.TempDir()
	err := run("clean", "--out-dir", filepath.Join(dir, "out"), filepath.Join(dir, "missing.dxf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input file not found")
}

func TestClean_InvalidFlagValue(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "part.dxf")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0644))
	err := run("clean", "--handle-base", "xyz", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: 'handle-base'")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "part.dxf")
	require.NoError(t, os.WriteFile(input, []byte(sample), 0644))
	require.NoError(t, run("inspect", input))
	require.Error(t, run("inspect"))
}

func TestDocs(t *testing.T) {
	require.NoError(t, run("docs"))
	require.NoError(t, run("docs", "handles"))
	err := run("docs", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}
