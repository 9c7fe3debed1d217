package main

import (
	"os"

	"github.com/prprompt/prprompt/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
