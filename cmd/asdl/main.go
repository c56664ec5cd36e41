package main

import (
	"os"

	"github.com/asdl-go/asdl/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
