// Command atakoris runs multilinear steady-state hydraulic analyses
// against EPANET .inp network files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
