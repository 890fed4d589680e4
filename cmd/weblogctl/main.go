package main

import (
	"fmt"
	"os"

	"weblog-analytics/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "weblogctl: %v\n", err)
		os.Exit(1)
	}
}
