package main

import (
	"os"

	"billed/cmd/billctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
