package main

import (
	"os"

	"github.com/tphakala/birdgroups/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
