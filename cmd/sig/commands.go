package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := newMainConfig()
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sig").
		WithSynopsis("sig [opts] command [opts]").
		WithDescription("sig computes order-independent signatures of JSON and YAML documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sigMain(cfg, cc, args)
		}).
		WithSubs(
			SignCommand(cfg),
			NotateCommand(cfg),
			CanonCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

func SignCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SignConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sign, "sign").
		WithAliases("s").
		WithSynopsis("sign [files]").
		WithDescription("print the signature of each document, or of stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sign(cfg, cc, args)
		})
}

func NotateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NotateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Notate, "notate").
		WithAliases("n").
		WithSynopsis("notate [files]").
		WithDescription("print the signed notation of each document, or of stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return notate(cfg, cc, args)
		})
}

func CanonCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CanonConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Canon, "canon").
		WithAliases("c").
		WithSynopsis("canon [files]").
		WithDescription("print each document as canonical JSON, with arrays in canonical order and keys sorted").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return canonical(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff file1 file2").
		WithDescription("compare the signatures and notations of two documents, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("v", "verify").
		WithSynopsis("check signature [files]").
		WithDescription("verify that each document, or stdin, has the given signature, exiting 1 otherwise").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
