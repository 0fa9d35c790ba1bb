package main

import (
	"log"
	"os"

	"github.com/zephyrtronium/scicalc/cmd/scicalc/cmd"
)

func main() {
	log.SetFlags(0)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
