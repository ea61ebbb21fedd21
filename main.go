package main

import (
	"os"

	"github.com/svetikas/ttbuild/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
