package main

import (
	"os"

	"github.com/blackstone-contractors/website/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
