// Command rbin validates, canonicalises and catalogues finite algebraic
// structures given as Cayley tables.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/rbin/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rbin: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
