package main

import (
	"os"

	"github.com/krakend/docs-search/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
