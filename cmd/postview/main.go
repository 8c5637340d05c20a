package main

import (
	"os"

	"github.com/Makepad-fr/postview/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
