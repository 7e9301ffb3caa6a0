// Package main is the entry point for the dynbuf CLI.
//
// Usage:
//
//	dynbuf [flags] <command> [subcommand] [args]
//
// Commands:
//
//	hex        - Hex encode/decode files and strings
//	inspect    - Inspect a file as a buffer (size, checksum, hex dump)
//	blob       - Blob store operations (put, get, list, delete, export, import)
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/dynbuf/cmd/dynbuf/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
