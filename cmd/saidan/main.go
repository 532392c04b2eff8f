package main

import (
	"fmt"
	"os"

	"github.com/babarot/saidan/internal/cli"
)

const appName = "saidan"

// These variables are set in build step
var (
	version   = "unset"
	revision  = "unset"
	buildDate = "unset"
)

func main() {
	v := cli.Version{
		AppName:   appName,
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	}

	if err := cli.Run(v); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
