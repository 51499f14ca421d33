package main

import (
	"fmt"
	"os"

	"github.com/kevinfinalboss/spyglass/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("Spyglass %s\n", Version)
		fmt.Printf("Build: %s\n", BuildTime)
		fmt.Printf("Commit: %s\n", GitCommit)
		return
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
