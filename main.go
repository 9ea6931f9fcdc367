package main

import (
	"os"

	"github.com/katalvlaran/mazepath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
