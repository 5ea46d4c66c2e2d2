package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookupEnv returns the value of EnvPrefix+key and whether it is non-empty.
func lookupEnv(key string) (string, bool) {
	val := os.Getenv(EnvPrefix + key)
	return val, val != ""
}

func getEnvString(key, defaultVal string) string {
	if val, ok := lookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt ignores values that do not parse as a decimal int.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := lookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool accepts true/1/yes and false/0/no, case-insensitively.
func getEnvBool(key string, defaultVal bool) bool {
	if val, ok := lookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := lookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet reports whether any of names was given on the command line.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// envBinding ties flag names to the environment key that may replace them.
type envBinding struct {
	flags []string
	key   string
	apply func(c *AppConfig, key string)
}

func intVar(get func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, key string) { p := get(c); *p = getEnvInt(key, *p) }
}

func boolVar(get func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, key string) { p := get(c); *p = getEnvBool(key, *p) }
}

func stringVar(get func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, key string) { p := get(c); *p = getEnvString(key, *p) }
}

func durationVar(get func(*AppConfig) *time.Duration) func(*AppConfig, string) {
	return func(c *AppConfig, key string) { p := get(c); *p = getEnvDuration(key, *p) }
}

// envBindings lists every PRIMECALC_* variable:
//
//	PRIMECALC_N, PRIMECALC_ALGO, PRIMECALC_TIMEOUT, PRIMECALC_TIME_LIMIT,
//	PRIMECALC_MIN_LIMIT, PRIMECALC_FALLBACK_LIMIT, PRIMECALC_JSON,
//	PRIMECALC_DETAILS, PRIMECALC_QUIET, PRIMECALC_NO_COLOR, PRIMECALC_THEME,
//	PRIMECALC_NO_BANNER, PRIMECALC_INTERACTIVE, PRIMECALC_OUTPUT,
//	PRIMECALC_METRICS_FILE, PRIMECALC_LOG_LEVEL
var envBindings = []envBinding{
	{[]string{"n"}, "N", intVar(func(c *AppConfig) *int { return &c.N })},
	{[]string{"min-limit"}, "MIN_LIMIT", intVar(func(c *AppConfig) *int { return &c.MinLimit })},
	{[]string{"fallback-limit"}, "FALLBACK_LIMIT", intVar(func(c *AppConfig) *int { return &c.FallbackLimit })},
	{[]string{"timeout"}, "TIMEOUT", durationVar(func(c *AppConfig) *time.Duration { return &c.Timeout })},
	{[]string{"time-limit"}, "TIME_LIMIT", durationVar(func(c *AppConfig) *time.Duration { return &c.TimeLimit })},
	{[]string{"algo"}, "ALGO", stringVar(func(c *AppConfig) *string { return &c.Algo })},
	{[]string{"theme"}, "THEME", stringVar(func(c *AppConfig) *string { return &c.Theme })},
	{[]string{"output", "o"}, "OUTPUT", stringVar(func(c *AppConfig) *string { return &c.OutputFile })},
	{[]string{"metrics-file"}, "METRICS_FILE", stringVar(func(c *AppConfig) *string { return &c.MetricsFile })},
	{[]string{"log-level"}, "LOG_LEVEL", stringVar(func(c *AppConfig) *string { return &c.LogLevel })},
	{[]string{"json"}, "JSON", boolVar(func(c *AppConfig) *bool { return &c.JSONOutput })},
	{[]string{"d", "details"}, "DETAILS", boolVar(func(c *AppConfig) *bool { return &c.Details })},
	{[]string{"quiet", "q"}, "QUIET", boolVar(func(c *AppConfig) *bool { return &c.Quiet })},
	{[]string{"no-color"}, "NO_COLOR", boolVar(func(c *AppConfig) *bool { return &c.NoColor })},
	{[]string{"no-banner"}, "NO_BANNER", boolVar(func(c *AppConfig) *bool { return &c.NoBanner })},
	{[]string{"interactive"}, "INTERACTIVE", boolVar(func(c *AppConfig) *bool { return &c.Interactive })},
}

// applyEnvOverrides fills every field whose flag was not given explicitly
// from the environment.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	for _, b := range envBindings {
		if !isFlagSet(fs, b.flags...) {
			b.apply(config, b.key)
		}
	}
}
