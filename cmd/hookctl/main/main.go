package main

import (
	"os"

	"github.com/arthur-debert/hooks/cmd/hookctl"
)

func main() {
	os.Exit(hookctl.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
