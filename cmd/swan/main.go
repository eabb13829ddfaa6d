package main

import (
	"os"

	"github.com/swan-lang/swan/cmd/swan/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
