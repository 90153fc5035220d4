package main

import (
	"os"

	"github.com/linxi/wordchamp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
