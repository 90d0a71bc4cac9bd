package main

import (
	"fmt"
	"io"

	"github.com/signadot/objsig/canon"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

func canonical(cfg *CanonConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Canon.Parse(cc, args)
	if err != nil {
		cfg.Canon.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, name := range inputs(args) {
		v, err := readValue(cfg.MainConfig, cc, name)
		if err != nil {
			return err
		}
		if cfg.Keys {
			err = keysTo(cc.Out, v)
		} else {
			err = canonTo(cfg.MainConfig, cc.Out, v)
		}
		if err != nil {
			return fmt.Errorf("error writing %s: %w", name, err)
		}
	}
	return nil
}

func canonTo(cfg *MainConfig, w io.Writer, v *value.Value) error {
	opts := []encode.EncodeOption{encode.EncodeNewline(true)}
	if c := cfg.colors(w); c != nil {
		opts = append(opts, encode.EncodeColors(c))
	}
	return encode.Encode(canon.Canonical(v), w, opts...)
}

// keysTo writes the key each child of v was sorted by, in canonical order,
// one per line.
func keysTo(w io.Writer, v *value.Value) error {
	_, keys := canon.CanonicalizeKeys(v)
	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%s\n", encode.Quote(key)); err != nil {
			return err
		}
	}
	return nil
}
