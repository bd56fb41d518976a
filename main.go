package main

import (
	"os"

	"github.com/spoonlabs/yt-report/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
