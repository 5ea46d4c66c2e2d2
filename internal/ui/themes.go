// Package ui holds the terminal colour themes shared by the CLI, the REPL
// and the error reporter.
package ui

import (
	"os"
	"strings"
	"sync"
)

// Theme maps semantic roles to ANSI escape codes.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme has every code empty.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the accepted theme names.
func ThemeNames() []string {
	return []string{DarkTheme.Name, LightTheme.Name, NoColorTheme.Name}
}

// ThemeByName looks up a theme, case-insensitively.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[strings.ToLower(name)]
	return t, ok
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme picks the active theme at startup. noColor and the NO_COLOR
// environment variable (https://no-color.org/) both force NoColorTheme;
// otherwise name selects the theme and unknown names fall back to dark.
func InitTheme(noColor bool, name string) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	t, ok := ThemeByName(name)
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}
