package main

import (
	"os"

	"github.com/keepsake-care/keepsake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
