package main

import (
	"fmt"
	"io"
	"os"

	"github.com/openucl/go-ucl/format"
	"github.com/openucl/go-ucl/gomap"
	"github.com/openucl/go-ucl/ir"
	"github.com/openucl/go-ucl/parse"

	"github.com/goccy/go-yaml"
)

func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// parseArg reads and parses one input document. YAML input goes
// through the yaml decoder, everything else through the relaxed
// parser, which also accepts plain JSON.
func parseArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if cfg.inFormat() == format.YAMLFormat {
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return gomap.ToIR(v)
	}
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}
