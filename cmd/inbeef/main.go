package main

import (
	"os"

	"github.com/rovshanmuradov/inbeef/cmd/inbeef/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
