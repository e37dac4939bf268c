package main

import (
	"fmt"
	"os"

	"github.com/conf-cli/conf/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		// Commands run with SilenceErrors, so this is the only place an
		// error is printed.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
