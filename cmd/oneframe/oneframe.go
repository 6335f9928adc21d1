package main

import (
	"os"

	"tableflip.dev/oneframe/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		os.Exit(1)
	}
}
