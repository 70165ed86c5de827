package main

import (
	"os"

	"github.com/eyelash/superscript/cmd/superscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
