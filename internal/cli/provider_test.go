package cli

import (
	"testing"

	"github.com/agbru/primecalc/internal/ui"
)

// TestCLIColorProvider switches the global theme and is not parallel.
func TestCLIColorProvider(t *testing.T) {
	ui.SetCurrentTheme(ui.DarkTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(ui.NoColorTheme) })

	p := CLIColorProvider{}
	if p.Yellow() != ui.DarkTheme.Warning {
		t.Errorf("Yellow() = %q", p.Yellow())
	}
	if p.Red() != ui.DarkTheme.Error {
		t.Errorf("Red() = %q", p.Red())
	}
	if p.Reset() != ui.DarkTheme.Reset {
		t.Errorf("Reset() = %q", p.Reset())
	}
}
