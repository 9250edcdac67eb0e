package main

import (
	"os"

	"github.com/spendlog/spendlog/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
