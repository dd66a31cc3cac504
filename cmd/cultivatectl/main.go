// Command cultivatectl is an operator tool for inspecting the cultivation calendar
// and minting API tokens.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
