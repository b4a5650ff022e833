package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dirwire/ldapdn/dn"
	"github.com/dirwire/ldapdn/schema"
)

// compareConfig seeds the case-insensitivity registry for the compare
// command. Attribute names are registered directly; attributeTypes are
// full RFC 4512 definitions evaluated for caseIgnore equality rules.
type compareConfig struct {
	CaseInsensitiveAttributes []string `yaml:"caseInsensitiveAttributes"`
	AttributeTypes            []string `yaml:"attributeTypes"`
}

// compareCmd handles the compare command. Exit code 0 means equal, 1 not
// equal, 2 failure.
func compareCmd(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flagsOf := parseFlags(fs)
	configPath := fs.String("config", "", "YAML file naming case-insensitive attribute types")
	defaults := fs.Bool("defaults", false, "Seed the registry from the built-in standard schema")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: dnutil compare [options] <dn> <dn>")
		return 2
	}

	reg := dn.NewCaseRegistry()
	if *defaults {
		reg.PopulateFromSubschema(schema.Defaults())
	}
	if *configPath != "" {
		if err := seedRegistry(reg, *configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		}
	}

	cmp := dn.Comparator{Registry: reg, Flags: flagsOf()}
	equal, err := cmp.Equal(fs.Arg(0), fs.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	fmt.Println(equal)
	if !equal {
		return 1
	}
	return 0
}

// seedRegistry loads a compare config and registers its attribute names.
func seedRegistry(reg *dn.CaseRegistry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var cfg compareConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	reg.Add(cfg.CaseInsensitiveAttributes...)
	if len(cfg.AttributeTypes) > 0 {
		sub, err := schema.ParseSubschema(map[string][]string{"attributeTypes": cfg.AttributeTypes})
		if err != nil {
			return err
		}
		reg.PopulateFromSubschema(sub)
	}
	return nil
}
