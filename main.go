package main

import (
	"os"

	"github.com/akashgh003/gen-ai-asgn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
