// Package src contains the Main function of lyricount. It sets up the signal
// handling and runs the command line interface with the process arguments.
//
// It is in package src because it is imported from the project's root main.go.
package src

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/ironsmile/lyricount/src/cli"
)

// Main is the only thing run in the project's root main.go file. For all intent
// and purposes this is the main function. It never returns.
func Main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs())
	stop()

	os.Exit(code)
}
