package main

import (
	"os"

	"github.com/ib-77/composable/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
