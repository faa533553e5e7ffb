// File: cmd/enrich-cli/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/enrichkit/enrich-cli/cmd"
	"github.com/enrichkit/enrich-cli/internal/enrichment"
	"github.com/enrichkit/enrich-cli/internal/observability"
)

const panicLogFile = "enrich-cli-panic.log"

// Swapped out in tests.
var (
	osWriteFile = os.WriteFile
	osExit      = os.Exit
)

func main() {
	defer handlePanic()

	// Ctrl+C or SIGTERM cancels the context, which stops the analysis child process.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	stop()

	osExit(enrichment.ExitCode(err))
}

// handlePanic records an unexpected panic with its stack trace in
// panicLogFile and exits non-zero.
func handlePanic() {
	r := recover()
	if r == nil {
		return
	}
	observability.Sync()

	panicMessage := fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack())
	if err := osWriteFile(panicLogFile, []byte(panicMessage), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: Failed to write panic log: %v\n", err)
		fmt.Fprintf(os.Stderr, "Panic details:\n%s\n", panicMessage)
		osExit(enrichment.ExitFailure)
		return
	}

	fmt.Fprintf(os.Stderr, "enrich-cli crashed unexpectedly. Details logged to %s\n", panicLogFile)
	osExit(enrichment.ExitFailure)
}
