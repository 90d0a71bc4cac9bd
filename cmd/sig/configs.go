package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/objsig"
	"github.com/signadot/objsig/encode"
	"github.com/signadot/objsig/format"
	"github.com/signadot/objsig/notation"
	"github.com/signadot/objsig/parse"
	"github.com/signadot/objsig/value"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	J     bool `cli:"name=j aliases=json desc='read input as json'"`
	Y     bool `cli:"name=y aliases=yaml desc='read input as yaml'"`
	Depth int  `cli:"name=depth desc='maximum nesting depth, negative for unbounded'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// inFormat determines the input format for the named file. Explicit flags
// win over the file extension.
func (cfg *MainConfig) inFormat(name string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case cfg.J:
		return format.JSONFormat
	case name == "-":
		return format.JSONFormat
	}
	return format.FromPath(name)
}

func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.inFormat(name)),
		parse.ParseMaxDepth(cfg.Depth),
	}
}

func (cfg *MainConfig) signOpts() []objsig.Option {
	return []objsig.Option{objsig.WithMaxDepth(cfg.Depth)}
}

func (cfg *MainConfig) notateOpts(w io.Writer) []notation.Option {
	res := []notation.Option{notation.MaxDepth(cfg.Depth)}
	if c := cfg.colors(w); c != nil {
		res = append(res, notation.Colors(c))
	}
	return res
}

// colors returns the colors to use when writing to w, or nil. An explicit
// -color flag wins, otherwise colors are used when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if cfg.Main == nil {
		return nil
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type SignConfig struct {
	*MainConfig

	Sign *cli.Command
}

type NotateConfig struct {
	*MainConfig

	Notate *cli.Command
}

type CanonConfig struct {
	*MainConfig

	Keys bool `cli:"name=k desc='print the ordering key of each top-level element instead'"`

	Canon *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='do not print OK lines'"`

	Check *cli.Command
}

func newMainConfig() *MainConfig {
	return &MainConfig{Depth: value.DefaultMaxDepth}
}
