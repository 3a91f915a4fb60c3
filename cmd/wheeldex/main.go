// Package main provides the wheeldex CLI for generating a static wheel index.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	// Running without arguments generates the index with defaults.
	if len(os.Args) < 2 {
		runGenerate(ctx, nil)
		return
	}

	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "generate":
		runGenerate(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wheeldex - Static simple-index generator for release-hosted wheels

Usage:
  wheeldex [command] [options]

Commands:
  generate  Fetch the latest release and write the static index (default)
  list      List the packages found in the latest release without writing

Use "wheeldex <command> --help" for more information about a command.`)
}
