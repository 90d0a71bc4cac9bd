package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/objsig/parse"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

// readValue reads and parses the named file, with "-" denoting the command
// input.
func readValue(cfg *MainConfig, cc *cli.Context, name string) (*value.Value, error) {
	var r io.Reader
	if name == "-" {
		r = cc.In
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}
	v, err := parse.Parse(data, cfg.parseOpts(name)...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", name, err)
	}
	return v, nil
}

// inputs returns args, or the command input if args is empty.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
