package main

import (
	"fmt"
	"io"

	"github.com/signadot/objsig/notation"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

func notate(cfg *NotateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Notate.Parse(cc, args)
	if err != nil {
		cfg.Notate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, name := range inputs(args) {
		v, err := readValue(cfg.MainConfig, cc, name)
		if err != nil {
			return err
		}
		if err := notateTo(cfg.MainConfig, cc.Out, name, v); err != nil {
			return err
		}
	}
	return nil
}

func notateTo(cfg *MainConfig, w io.Writer, name string, v *value.Value) error {
	if err := notation.Write(w, v, cfg.notateOpts(w)...); err != nil {
		return fmt.Errorf("error notating %s: %w", name, err)
	}
	_, err := w.Write([]byte{'\n'})
	return err
}
