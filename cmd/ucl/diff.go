package main

import (
	"fmt"
	"io"

	"github.com/openucl/go-ucl/encode"
	"github.com/openucl/go-ucl/ir"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff compares two documents structurally. Equivalent documents (key
// order aside) produce no output; otherwise a character diff of the
// canonical renderings is shown and the command exits nonzero.
func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := parseArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := parseArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		from, to = to, from
	}
	if ir.Equal(from, to) {
		return nil
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(from), encode.MustString(to), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if _, err := io.WriteString(cc.Out, dmp.DiffPrettyText(diffs)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
