package app

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"empty", nil, false},
		{"no version flag", []string{"-n", "100"}, false},
		{"long", []string{"--version"}, true},
		{"short", []string{"-V"}, true},
		{"single dash", []string{"-version"}, true},
		{"among others", []string{"-n", "100", "--version", "-algo", "sieve"}, true},
		{"flag value is not a flag", []string{"-o", "version"}, false},
		{"lowercase v", []string{"-v"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasVersionFlag(tc.args); got != tc.expected {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tc.args, got, tc.expected)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)

	output := buf.String()
	for _, want := range []string{
		"primecalc " + Version,
		"Commit:     " + Commit,
		"Built:      " + BuildDate,
		"Go version: " + runtime.Version(),
		"OS/Arch:    " + runtime.GOOS + "/" + runtime.GOARCH,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrintVersion output missing %q:\n%s", want, output)
		}
	}
}

func TestGetVersionInfoJSON(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(GetVersionInfo())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]string
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["version"] != Version || decoded["go_version"] != runtime.Version() || decoded["arch"] != runtime.GOARCH {
		t.Errorf("unexpected version payload: %s", data)
	}
}
