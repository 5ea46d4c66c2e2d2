// Command primecalc finds the n-th prime number.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/primecalc/internal/app"
	"github.com/agbru/primecalc/internal/logging"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(app.ExitCodeForError(err))
	}

	logger, err := logging.Setup(application.Config.LogLevel, os.Stderr, "primecalc")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(app.ExitCodeForError(err))
	}
	application.Logger = logger

	os.Exit(application.Run(context.Background(), os.Stdout))
}
