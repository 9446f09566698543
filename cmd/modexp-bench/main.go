// Command modexp-bench times modular exponentiation on random bases and
// compares files byte by byte.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "modexp-bench: ERROR:", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "modexp-bench",
		Usage:     "modular exponentiation benchmark",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			runCommand,
			compareEnginesCommand,
			filecmpCommand,
			dumpConfigCommand,
		},
		// errors are printed once by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
