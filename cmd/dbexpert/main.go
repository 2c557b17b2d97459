package main

import (
	"fmt"
	"os"

	"github.com/OlegQm/database-expert-bot/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
