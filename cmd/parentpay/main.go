package main

import (
	"os"

	"github.com/qoocca/parent-pay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
