package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/receipts_ledger/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
