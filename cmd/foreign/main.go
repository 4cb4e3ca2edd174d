package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	foreign "github.com/reoring/foreign"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "check":
		checkCmd(os.Args[2:])
	case "echo":
		echoCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "foreign CLI\n\nUsage:\n  foreign check -type <expr> [-yaml] [file]\n  foreign echo [-yaml] [file]\n\nType expressions:\n  string | char | bool | number | int | foreign\n  array<T> | option<T> | map<string,T> | map<int,T>\n\nReads from stdin when no file is given. echo prints the document as canonical JSON.")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var typeExpr string
	var fromYAML bool
	fs.StringVar(&typeExpr, "type", "", "type expression to decode against")
	fs.BoolVar(&fromYAML, "yaml", false, "treat input as YAML instead of JSON")
	_ = fs.Parse(args)
	if typeExpr == "" {
		fs.Usage()
		os.Exit(2)
	}
	c, err := compileType(typeExpr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foreign: bad -type: %v\n", err)
		os.Exit(2)
	}
	f, err := materialize(fs.Args(), fromYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foreign: %v\n", err)
		os.Exit(2)
	}
	if _, err := c.Decode(context.Background(), f); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	fmt.Println("ok")
}

func echoCmd(args []string) {
	fs := flag.NewFlagSet("echo", flag.ExitOnError)
	var fromYAML bool
	fs.BoolVar(&fromYAML, "yaml", false, "treat input as YAML instead of JSON")
	_ = fs.Parse(args)
	f, err := materialize(fs.Args(), fromYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foreign: %v\n", err)
		os.Exit(2)
	}
	out, err := foreign.EncodeJSON(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foreign: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(out))
}

func materialize(args []string, fromYAML bool) (foreign.Foreign, error) {
	var r io.Reader = os.Stdin
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return foreign.Undefined(), err
		}
		defer file.Close()
		r = file
	}
	if fromYAML {
		return foreign.YAMLReader(r)
	}
	return foreign.JSONReader(r)
}
