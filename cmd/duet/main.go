package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/duet-json/duet/source/yaml"
	"github.com/duet-json/duet/tree"
)

// CLI defines the command-line interface
var CLI struct {
	Input   string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output  string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent  int    `help:"Spaces per indentation level." default:"2"`
	Compact bool   `help:"Emit compact output (overrides --indent)." short:"c"`
	YAML    bool   `help:"Treat the input as YAML instead of JSON." short:"y"`
	Version bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("duet"),
		kong.Description("Validate and reformat JSON, or convert YAML to JSON."),
		kong.UsageOnError(),
	)
	_, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	if CLI.Version {
		fmt.Printf("duet version %s\n", version)
		return
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "duet: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}

	var v tree.Value
	if CLI.YAML {
		v, err = yaml.Parse(data)
	} else {
		v, err = tree.Parse(data)
	}
	if err != nil {
		return err
	}

	indent := CLI.Indent
	if CLI.Compact {
		indent = 0
	}
	out := tree.Serialize(v, indent)
	return writeOutput(out + "\n")
}

func readInput() ([]byte, error) {
	if CLI.Input == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(CLI.Input)
}

func writeOutput(s string) error {
	if CLI.Output == "" {
		_, err := os.Stdout.WriteString(s)
		return err
	}
	return os.WriteFile(CLI.Output, []byte(s), 0o644)
}
