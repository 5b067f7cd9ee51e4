package main

import (
	"os"

	"github.com/praetorian-inc/slice/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Colslc, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
