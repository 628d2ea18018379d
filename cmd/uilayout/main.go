// Package main provides the CLI tool for layout documents.
//
// Usage:
//
//	uilayout resolve [options] [path...]    Print the resolved boxes
//	uilayout check [path...]                Validate documents
//	uilayout snapshot [options] [path...]   Render PNG snapshots
//	uilayout view [options] path            Open a live preview window
//	uilayout help                           Show help
//
// Examples:
//
//	uilayout resolve ./...                  Resolve every document recursively
//	uilayout snapshot -o out hud.html       Write out/hud.png
//	uilayout view -width 1920 hud.html      Preview at a given viewport
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `uilayout - layout tool for in-game UI documents

Usage:
  uilayout <command> [options] [path...]

Commands:
  resolve     Lay out documents and print every box
  check       Parse documents without laying them out
  snapshot    Render documents to PNG outlines
  view        Open a window that re-lays out on resize
  version     Print version information
  help        Show this help message

Options:
  -width N        Viewport width in pixels
  -height N       Viewport height in pixels
  -font N         Root font size in pixels
  -config FILE    TOML config with defaults for the options above
  -v              Verbose output
  -o DIR          Snapshot output directory (default ".")
  -fit N          Scale snapshots down to fit N x N pixels

Documents are .html files; paths may be files, directories, or
recursive patterns such as ./...

Examples:
  uilayout resolve hud.html                   Print boxes at the default viewport
  uilayout resolve -width 800 -height 600 -v hud.html
  uilayout check ./...                        Validate all documents recursively
  uilayout snapshot -o shots ./ui             Render each document in ./ui
  uilayout snapshot -config uilayout.toml ./...
  uilayout view hud.html                      Preview with hover inspection
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout, os.Stderr); err != nil {
		if err != errUsage {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// errUsage signals that usage was already printed.
var errUsage = errors.New("usage")

func run(command string, args []string, stdout, stderr io.Writer) error {
	switch command {
	case "resolve":
		return runResolve(args, stdout, stderr)
	case "check":
		return runCheck(args, stdout, stderr)
	case "snapshot":
		return runSnapshot(args, stdout, stderr)
	case "view":
		return runView(args, stderr)
	case "version":
		fmt.Fprintf(stdout, "uilayout version %s\n", version)
		return nil
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stdout, usage)
		return errUsage
	}
}
