// Package main provides dnutil, a command line tool for working with
// LDAP distinguished names: parsing, exploding, validity checking,
// normalization and schema-aware comparison.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args))
}

// run executes the CLI and returns an exit code. Separated from main()
// to facilitate testing.
func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return 1
	}

	switch args[1] {
	case "parse":
		return parseCmd(args[2:])
	case "explode":
		return explodeCmd(args[2:])
	case "check":
		return checkCmd(args[2:])
	case "normalize":
		return normalizeCmd(args[2:])
	case "compare":
		return compareCmd(args[2:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[1])
		fmt.Fprintln(os.Stderr, "Run 'dnutil help' for usage.")
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: dnutil <command> [options] <args>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  parse      Parse DNs and print their structure as JSON")
	fmt.Fprintln(w, "  explode    Break a DN into its RDN strings")
	fmt.Fprintln(w, "  check      Report whether arguments are valid DNs")
	fmt.Fprintln(w, "  normalize  Re-emit DNs in canonical LDAPv3 form")
	fmt.Fprintln(w, "  compare    Compare two DNs for schema-aware equality")
	fmt.Fprintln(w, "  help       Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'dnutil <command> -h' for command options.")
}
