package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/objsig"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires a signature", cli.ErrUsage)
	}
	want, err := objsig.ParseSum(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	failed := 0
	for _, name := range inputs(args[1:]) {
		v, err := readValue(cfg.MainConfig, cc, name)
		if err != nil {
			return err
		}
		ok, err := checkTo(cfg, cc.Out, name, want.String(), v)
		if err != nil {
			return err
		}
		if !ok {
			failed++
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkTo reports whether v has signature sig, writing a line in the format
// of md5sum -c.
func checkTo(cfg *CheckConfig, w io.Writer, name, sig string, v *value.Value) (bool, error) {
	err := objsig.Verify(v, sig, cfg.signOpts()...)
	switch {
	case err == nil:
		if cfg.Quiet {
			return true, nil
		}
		_, err = fmt.Fprintf(w, "%s: OK\n", name)
		return true, err
	case errors.Is(err, objsig.ErrMismatch):
		_, err = fmt.Fprintf(w, "%s: FAILED\n", name)
		return false, err
	default:
		return false, fmt.Errorf("error checking %s: %w", name, err)
	}
}
