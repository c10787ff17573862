package main

import (
	"os"

	"github.com/Devesh-1988-Wan/z10triage/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
