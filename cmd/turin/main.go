package main

import (
	"os"

	"github.com/turin-lang/turin/pkg/cli"
)

// The textual parser and the class file emitter plug in here once built;
// the driver runs the full front-end pipeline between them.
func main() {
	os.Exit(cli.NewDriver(nil, nil).Run(os.Args[1:]))
}
