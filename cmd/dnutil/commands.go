package main

import (
	"flag"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/dirwire/ldapdn/dn"
)

// parseFlags adds the shared parser option flags to fs and returns a
// getter for the resulting dn.ParseFlags.
func parseFlags(fs *flag.FlagSet) func() dn.ParseFlags {
	legacy := fs.Bool("legacy", false, "Permit legacy attribute type names")
	strict := fs.Bool("strict", false, "Reject non-standard escapes and whitespace")
	nobinary := fs.Bool("no-binary", false, "Treat a leading '#' as an ordinary character")
	return func() dn.ParseFlags {
		var f dn.ParseFlags
		if *legacy {
			f |= dn.AllowLegacyNames
		}
		if *strict {
			f |= dn.StrictEscapes
		}
		if *nobinary {
			f |= dn.NoBinaryValues
		}
		return f
	}
}

// parseCmd handles the parse command.
func parseCmd(args []string) int {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flagsOf := parseFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: dnutil parse [options] <dn>...")
		return 1
	}

	for _, arg := range fs.Args() {
		d, err := dn.Parse(arg, flagsOf())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
	}
	return 0
}

// explodeCmd handles the explode command.
func explodeCmd(args []string) int {
	fs := flag.NewFlagSet("explode", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flagsOf := parseFlags(fs)
	noTypes := fs.Bool("notypes", false, "Emit attribute values without their types")
	rdn := fs.Bool("rdn", false, "Treat the argument as a single RDN")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: dnutil explode [options] <dn>")
		return 1
	}

	explode := dn.ExplodeDN
	if *rdn {
		explode = dn.ExplodeRDN
	}
	parts, err := explode(fs.Arg(0), *noTypes, flagsOf())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	for _, part := range parts {
		fmt.Println(part)
	}
	return 0
}

// checkCmd handles the check command. The exit code is 0 only if every
// argument is a valid DN.
func checkCmd(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flagsOf := parseFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: dnutil check [options] <dn>...")
		return 1
	}

	code := 0
	for _, arg := range fs.Args() {
		ok := dn.IsDN(arg, flagsOf())
		fmt.Printf("%s\t%v\n", arg, ok)
		if !ok {
			code = 1
		}
	}
	return code
}

// normalizeCmd handles the normalize command.
func normalizeCmd(args []string) int {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flagsOf := parseFlags(fs)

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: dnutil normalize [options] <dn>...")
		return 1
	}

	for _, arg := range fs.Args() {
		out, err := dn.Normalize(arg, flagsOf())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(out)
	}
	return 0
}
