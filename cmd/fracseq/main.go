// Command fracseq runs demonstrations for sequences with fractional
// positions.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/fracseq/cmd/fracseq/cli"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("fracseq", "Demonstrations for ordered sequences with fractional positions.")
	if err := run(app); err != nil {
		fmt.Fprintf(os.Stderr, "fracseq: %v\n", err)
		os.Exit(255)
	}
}

func run(app *kingpin.Application) error {
	fracseq := cli.RegisterCommands(app)
	return cli.Run(fracseq, os.Args[1:])
}
