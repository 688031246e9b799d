package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePumaFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func executeCommand(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func TestBuildCommandWritesUnits(t *testing.T) {
	dir := t.TempDir()
	writePumaFile(t, dir, "app.puma", "module App\n\nfunctions\nRun()\n")

	out := t.TempDir()

	_, err := executeCommand("build", dir, "--out", out)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(out, "App.h"))
	assert.FileExists(t, filepath.Join(out, "App.c"))
}

func TestBuildCommandWritesNextToSourceByDefault(t *testing.T) {
	dir := t.TempDir()
	writePumaFile(t, dir, "shape.puma", "type Shape is object\n")

	_, err := executeCommand("build", dir, "--out", "")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "Shape.hpp"))
	assert.FileExists(t, filepath.Join(dir, "Shape.cpp"))
}

func TestCheckCommandReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writePumaFile(t, dir, "bad.puma", "module Bad\n\ninitialize\n\nstart\n")

	output, err := executeCommand("check", dir)
	require.Error(t, err)

	assert.Contains(t, output, "lifecycle-conflict")

	// check never writes output files.
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestCheckCommandCleanFile(t *testing.T) {
	dir := t.TempDir()
	writePumaFile(t, dir, "good.puma", "module Good\n")

	_, err := executeCommand("check", dir)
	require.NoError(t, err)
}

func TestListCommandShowsSectionCounts(t *testing.T) {
	dir := t.TempDir()
	writePumaFile(t, dir, "app.puma", "module App\n\nenums\nColor\n\nfunctions\nRun()\n")

	output, err := executeCommand("list", dir)
	require.NoError(t, err)

	assert.Contains(t, output, "app.puma")
	assert.Contains(t, output, "module")
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand("version")
	require.NoError(t, err)

	assert.Contains(t, output, "pumagen")
}

func TestParsePathsDefaultsToRecursiveCwd(t *testing.T) {
	paths := parsePaths(nil)

	require.Len(t, paths, 1)
	assert.Equal(t, "./...", string(paths[0]))
}
