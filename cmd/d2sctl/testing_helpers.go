package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/ShadwDrgn/d2skit/internal/testutil"
)

// testSave writes a synthetic save into a temp dir, points --dir at it and
// returns its path.
func testSave(t *testing.T, s testutil.SaveSpec) string {
	t.Helper()
	dir := t.TempDir()
	saveDir = dir
	t.Cleanup(func() { saveDir = "" })
	return testutil.WriteSave(t, dir, s)
}

// resetFlags restores global flags to their defaults.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	infoRecords = false
	setBackup = false
	setDryRun = false
	applyBackup = false
	applyDryRun = false
	renameRemoveOld = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// decodeJSON checks that output is valid JSON and returns it
func decodeJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	return result
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}
