package main

import (
	"fmt"

	ucl "github.com/openucl/go-ucl"
	"github.com/openucl/go-ucl/gomap"

	"github.com/scott-cotton/cli"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: validate requires a schema and a document", cli.ErrUsage)
	}
	schema, err := parseArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	doc, err := parseArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	return ucl.Validate(gomap.FromIR(schema), gomap.FromIR(doc))
}
