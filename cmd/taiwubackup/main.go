package main

import (
	"os"

	"github.com/taiwu-tools/taiwubackup/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
