package cli

import (
	"fmt"
	"io"
	"strings"
)

// completionFlag describes one flag for completion scripts. Values are
// suggested after the flag; File requests path completion instead.
type completionFlag struct {
	Long   string
	Short  string
	Desc   string
	Values []string
	File   bool
	// Arg is true for flags that take a value.
	Arg bool
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func completionFlags(algorithms []string) []completionFlag {
	algos := append(append([]string{}, algorithms...), "all")
	return []completionFlag{
		{Long: "help", Short: "h", Desc: "Show help message"},
		{Long: "version", Short: "V", Desc: "Show version information"},
		{Long: "n", Desc: "Index of the prime to find", Arg: true, Values: []string{"10", "1000", "10000", "148933"}},
		{Long: "algo", Desc: "Algorithm to use", Arg: true, Values: algos},
		{Long: "timeout", Desc: "Maximum execution time", Arg: true, Values: []string{"10s", "30s", "1m", "5m"}},
		{Long: "time-limit", Desc: "Time check threshold", Arg: true, Values: []string{"1s", "3s", "10s", "30s"}},
		{Long: "min-limit", Desc: "Smallest sieve bound", Arg: true},
		{Long: "fallback-limit", Desc: "Sieve bound when the estimate is unusable", Arg: true},
		{Long: "details", Short: "d", Desc: "Show sieve and timing details"},
		{Long: "json", Desc: "Output in JSON format"},
		{Long: "no-color", Desc: "Disable colored output"},
		{Long: "theme", Desc: "Color theme", Arg: true, Values: []string{"dark", "light", "none"}},
		{Long: "no-banner", Desc: "Do not print the banner"},
		{Long: "output", Short: "o", Desc: "Output file path", Arg: true, File: true},
		{Long: "metrics-file", Desc: "Prometheus textfile path", Arg: true, File: true},
		{Long: "quiet", Short: "q", Desc: "Quiet mode for scripts"},
		{Long: "interactive", Desc: "Start interactive REPL mode"},
		{Long: "completion", Desc: "Generate completion script", Arg: true, Values: completionShells},
		{Long: "log-level", Desc: "Diagnostic log level", Arg: true, Values: []string{"debug", "info", "warn", "error", "disabled"}},
	}
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish", "powershell" or "ps") listing algorithms as -algo values.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	flags := completionFlags(algorithms)
	var script string
	switch strings.ToLower(shell) {
	case "bash":
		script = bashCompletion(flags)
	case "zsh":
		script = zshCompletion(flags)
	case "fish":
		script = fishCompletion(flags)
	case "powershell", "ps":
		script = powerShellCompletion(flags)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: %s)", shell, strings.Join(completionShells, ", "))
	}
	_, err := io.WriteString(out, script)
	return err
}

func bashCompletion(flags []completionFlag) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flags {
		names := []string{"-" + f.Long, "--" + f.Long}
		if f.Short != "" {
			names = append(names, "-"+f.Short)
		}
		opts = append(opts, names...)
		switch {
		case f.File:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n            return 0\n            ;;\n", strings.Join(names, "|"))
		case len(f.Values) > 0:
			fmt.Fprintf(&cases, "        %s)\n            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n            return 0\n            ;;\n", strings.Join(names, "|"), strings.Join(f.Values, " "))
		}
	}

	return fmt.Sprintf(`# Bash completion script for primecalc
# Add this to your ~/.bashrc or ~/.bash_completion

_primecalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _primecalc_completions primecalc
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion(flags []completionFlag) string {
	var args []string
	for _, f := range flags {
		entry := fmt.Sprintf("'-%s[%s]", f.Long, f.Desc)
		if f.Short != "" {
			entry = fmt.Sprintf("'(-%s -%s)'{-%s,-%s}'[%s]", f.Short, f.Long, f.Short, f.Long, f.Desc)
		}
		switch {
		case f.File:
			entry += ":file:_files"
		case len(f.Values) > 0:
			entry += fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
		case f.Arg:
			entry += ":" + f.Long + ":"
		}
		args = append(args, entry+"'")
	}

	return fmt.Sprintf(`#compdef primecalc

# Zsh completion script for primecalc
# Add this to your ~/.zshrc or place in $fpath

_primecalc() {
    _arguments -s \
        %s
}

_primecalc "$@"
`, strings.Join(args, " \\\n        "))
}

func fishCompletion(flags []completionFlag) string {
	var b strings.Builder
	b.WriteString("# Fish completion script for primecalc\n")
	b.WriteString("# Add this to ~/.config/fish/completions/primecalc.fish\n\n")
	b.WriteString("complete -c primecalc -f\n")
	for _, f := range flags {
		line := "complete -c primecalc"
		if f.Short != "" {
			line += " -s " + f.Short
		}
		// Go's flag package accepts single-dash long names; fish's -o
		// completes them that way.
		line += " -o " + f.Long
		line += fmt.Sprintf(" -d '%s'", f.Desc)
		switch {
		case f.File:
			line += " -rF"
		case len(f.Values) > 0:
			line += fmt.Sprintf(" -xa '%s'", strings.Join(f.Values, " "))
		case f.Arg:
			line += " -x"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func powerShellCompletion(flags []completionFlag) string {
	var options, values strings.Builder
	for _, f := range flags {
		fmt.Fprintf(&options, "        @{Name = '-%s'; Description = '%s' }\n", f.Long, f.Desc)
		if f.Short != "" {
			fmt.Fprintf(&options, "        @{Name = '-%s'; Description = '%s' }\n", f.Short, f.Desc)
		}
		if len(f.Values) > 0 {
			quoted := make([]string, len(f.Values))
			for i, v := range f.Values {
				quoted[i] = "'" + v + "'"
			}
			fmt.Fprintf(&values, "        '-%s' { $candidates = @(%s) }\n", f.Long, strings.Join(quoted, ", "))
		}
	}

	return fmt.Sprintf(`# PowerShell completion script for primecalc
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'primecalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    if ($wordToComplete -ne '' -and $elements.Count -gt 2) { $prevElement = $elements[-2].ToString() }

    $candidates = $null
    switch ($prevElement) {
%s    }

    if ($candidates) {
        $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
        return
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, options.String(), values.String())
}
