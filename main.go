package main

import (
	"os"

	"github.com/Sachin-ora/Interlink/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
