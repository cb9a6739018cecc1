// Command snidtool prepares SNID supernova spectral templates.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-snid/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
