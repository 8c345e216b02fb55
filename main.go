package main

import (
	"os"

	"github.com/abhisek/geoquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
