package main

import (
	"os"

	"github.com/yleoer/emoji/cmd/emoji/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
