package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("INTAKEFORM_CONFIG", "")
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_HTMLToStdout(t *testing.T) {
	out, err := run(t, "render")
	require.NoError(t, err)
	require.Contains(t, out, "<!DOCTYPE html>")
	require.Equal(t, 1, strings.Count(out, "window.print()"))
}

func TestRender_TextSubsetToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.txt")
	_, err := run(t, "render", "--format", "text", "--sections", "services", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "Services / Products")
	require.NotContains(t, string(data), "Business Name")
}

func TestRender_NoPrintButtonAndVariant(t *testing.T) {
	out, err := run(t, "render", "--no-print-button", "--variant", "print")
	require.NoError(t, err)
	require.NotContains(t, out, "window.print()")
	require.Contains(t, out, `data-fg-variant="print"`)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := run(t, "render", "--format", "pdf")
	require.Error(t, err)
}

func TestLint_DefaultForm(t *testing.T) {
	out, err := run(t, "lint")
	require.NoError(t, err)
	require.Contains(t, out, "6 sections, 21 questions, ok")
}

func TestLint_ReportsIssues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	doc := "header: {title: Broken}\nsections: [{title: A, questions: [{number: '2', label: b}, {number: '1', label: c}]}]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, "lint", "--form", path)
	require.Error(t, err)
	require.Contains(t, out, "out-of-order")
}

func TestPrint_FailureDoesNotFailCommand(t *testing.T) {
	_, err := run(t, "print", "--command", filepath.Join(t.TempDir(), "no-such-spooler"))
	require.NoError(t, err)
}
