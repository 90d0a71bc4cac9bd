package main

import (
	"fmt"
	"io"

	"github.com/signadot/objsig"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

func sign(cfg *SignConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sign.Parse(cc, args)
	if err != nil {
		cfg.Sign.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, name := range inputs(args) {
		v, err := readValue(cfg.MainConfig, cc, name)
		if err != nil {
			return err
		}
		if err := signTo(cfg.MainConfig, cc.Out, name, v); err != nil {
			return err
		}
	}
	return nil
}

// signTo writes a line in the format of md5sum.
func signTo(cfg *MainConfig, w io.Writer, name string, v *value.Value) error {
	s, err := objsig.Signature(v, cfg.signOpts()...)
	if err != nil {
		return fmt.Errorf("error signing %s: %w", name, err)
	}
	_, err = fmt.Fprintf(w, "%s  %s\n", s, name)
	return err
}
