package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/trellis/cmd/trellis/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "layout":
		err = commands.Layout(args)
	case "check":
		err = commands.Check(args)
	case "version", "-v", "--version":
		fmt.Printf("trellis version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`trellis - layout inspector

Usage: trellis <command> [options] <file.toml>

Commands:
  layout          Compute a layout and print every node's rectangles
  check           Validate a layout document without computing it
  version         Print version information
  help            Show this help message

Examples:
  trellis layout ui.toml                          Use the document's viewport
  trellis layout -width 1280 -height 720 ui.toml  Override the viewport
  trellis layout -png out.png -labels ui.toml     Also write a snapshot
  trellis check ui.toml                           Report syntax and value errors`)
}
