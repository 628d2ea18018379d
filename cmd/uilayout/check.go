package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-uilayout/internal/markup"
)

// runCheck implements the check subcommand.
// It parses documents and validates their declarations without laying
// them out. Useful for syntax checking in editors and CI.
func runCheck(args []string, stdout, stderr io.Writer) error {
	o, err := parseOptions("check", args, stderr)
	if err != nil {
		return err
	}
	files, err := o.files()
	if err != nil {
		return err
	}

	if o.verbose {
		fmt.Fprintf(stdout, "Checking %d document(s)\n", len(files))
	}

	var errorCount int
	for _, path := range files {
		doc, err := markup.LoadFile(path)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			errorCount++
			continue
		}
		if o.verbose {
			fmt.Fprintf(stdout, "%s: %d node(s), %d root(s)\n", path, doc.Tree.Len(), len(doc.Roots))
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if o.verbose {
		fmt.Fprintf(stdout, "All %d document(s) passed checks\n", len(files))
	}
	return nil
}
