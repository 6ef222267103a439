package main

import (
	"os"

	"github.com/citypulse/crimecast/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
