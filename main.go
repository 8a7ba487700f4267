package main

import (
	"os"

	"github.com/Mr-Gerald/graceful-path-web/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
