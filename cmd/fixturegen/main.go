package main

import (
	"os"

	"github.com/runfalk/typed-ctypes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
