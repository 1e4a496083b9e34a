package main

import (
	"os"

	"github.com/bnema/airella-bridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
