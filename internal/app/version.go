// Package app wires configuration, calculators and output into the
// primecalc command.
package app

import (
	"fmt"
	"io"
	"runtime"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/agbru/primecalc/internal/app.Version=v1.0.0 -X github.com/agbru/primecalc/internal/app.Commit=abc123 -X github.com/agbru/primecalc/internal/app.BuildDate=2026-01-01T00:00:00Z" ./cmd/primecalc
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args contain -V, -version or --version
// anywhere, so the flag works before parsing and alongside others.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-V", "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the build information.
func PrintVersion(out io.Writer) {
	info := GetVersionInfo()
	fmt.Fprintf(out, "primecalc %s\n", info.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", info.Commit)
	fmt.Fprintf(out, "  Built:      %s\n", info.BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", info.GoVersion)
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", info.OS, info.Arch)
}

// VersionData is the build information as a value.
type VersionData struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns the build information of the running binary.
func GetVersionInfo() VersionData {
	return VersionData{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
