// main is the entry point for the velomax CLI.
package main

import (
	"github.com/strengthlab/velomax/cmd"
	"github.com/strengthlab/velomax/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("velomax failed", err)
	}
}
