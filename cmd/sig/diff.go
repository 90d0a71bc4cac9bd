package main

import (
	"fmt"
	"io"

	"github.com/signadot/objsig"
	"github.com/signadot/objsig/libdiff"
	"github.com/signadot/objsig/notation"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	v1, err := readValue(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	v2, err := readValue(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differ, err := diffTo(cfg.MainConfig, cc.Out, args[0], args[1], v1, v2)
	if err != nil {
		return err
	}
	if differ {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffTo writes both signatures and, when they differ, a character level
// diff of the notations.
func diffTo(cfg *MainConfig, w io.Writer, n1, n2 string, v1, v2 *value.Value) (bool, error) {
	s1, err := objsig.Sign(v1, cfg.signOpts()...)
	if err != nil {
		return false, fmt.Errorf("error signing %s: %w", n1, err)
	}
	s2, err := objsig.Sign(v2, cfg.signOpts()...)
	if err != nil {
		return false, fmt.Errorf("error signing %s: %w", n2, err)
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n%s  %s\n", s1, n1, s2, n2); err != nil {
		return false, err
	}
	if s1 == s2 {
		return false, nil
	}
	t1, err := notation.Notate(v1, notation.MaxDepth(cfg.Depth))
	if err != nil {
		return true, err
	}
	t2, err := notation.Notate(v2, notation.MaxDepth(cfg.Depth))
	if err != nil {
		return true, err
	}
	diffs := libdiff.Notations(t1, t2)
	if err := libdiff.Render(w, diffs, cfg.colors(w) != nil); err != nil {
		return true, err
	}
	_, err = w.Write([]byte{'\n'})
	return true, err
}
