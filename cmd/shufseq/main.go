// Command shufseq measures and verifies the bounded-randomness generators.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
