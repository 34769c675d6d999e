package main

import (
	"os"

	"horbital/cmd/horbital/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
