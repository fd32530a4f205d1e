package main

import (
	"os"

	"github.com/SmauRobert/SmartTest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
