package main

import (
	"os"

	"github.com/clinscribe/clinscribe/cmd/clinscribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
