package main

import (
	"fmt"
	"os"

	"issuance-engine/cmd/issuance-admin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
