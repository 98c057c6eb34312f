// Command kasir is the point-of-sale CLI.
package main

import (
	"os"

	"github.com/koncoweb/kasir-go/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
