package main

import (
	"fmt"
	"io"

	"github.com/openucl/go-ucl/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeColors(encode.NewColors()))
	for _, arg := range args {
		node, err := parseArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(node, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if cfg.outFormat().IsJSON() {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
