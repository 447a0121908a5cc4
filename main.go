package main

import (
	"os"

	"github.com/ychsiao/tablerush/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
