package main

import (
	"os"

	"github.com/bnema/persona-chat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
