// SPDX-License-Identifier: MIT

// Command kgen writes a problem instance in the kembed input format.
//
//	kgen [-config file] [-host-kind dense] [-host-size 5] [-pattern-kind chain]
//	     [-pattern-size 3] [-param 0.5] [-k 1] [-seed 1] [-loops] [-max-mult 3] [dst]
//
// Kinds: empty, chain, clique, grid, dense, sparse, multi. param is the
// clique size, grid width or edge probability, depending on the kind. The
// pattern is drawn with seed+1 so host and pattern differ for equal kinds.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/kembed/builder"
	"github.com/katalvlaran/kembed/config"
	"github.com/katalvlaran/kembed/graph"
	"github.com/katalvlaran/kembed/graphio"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

// flagKeys maps flag names onto config keys; only flags given on the command
// line override the config.
var flagKeys = map[string]string{
	"host-kind":    config.KeyHostKind,
	"host-size":    config.KeyHostSize,
	"pattern-kind": config.KeyPatternKind,
	"pattern-size": config.KeyPatternSize,
	"param":        config.KeyParam,
	"k":            config.KeyCopies,
	"seed":         config.KeySeed,
	"loops":        config.KeyLoops,
	"max-mult":     config.KeyMultiplicity,
	"log-level":    config.KeyLogLevel,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "optional config file (yaml, json or toml)")
	fs.String("host-kind", "", "host topology")
	fs.Int("host-size", 0, "host vertex count")
	fs.String("pattern-kind", "", "pattern topology")
	fs.Int("pattern-size", 0, "pattern vertex count")
	fs.Float64("param", 0, "clique size, grid width or edge probability")
	fs.Int("k", 0, "number of copies")
	fs.Int64("seed", 0, "random seed")
	fs.Bool("loops", false, "allow self-loops in random topologies")
	fs.Int("max-mult", 0, "largest multiplicity drawn by multi")
	fs.String("log-level", "", "zerolog level")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg := config.NewConfig()
	if *cfgPath != "" {
		if err := cfg.LoadFromFile(*cfgPath); err != nil {
			fmt.Fprintf(stderr, "Error: config %q: %v\n", *cfgPath, err)
			return exitUsage
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			cfg.Set(key, f.Value.String())
		}
	})
	logger := cfg.CreateLogger(stderr)

	in, err := generate(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logger.Info().
		Str("host", cfg.HostKind()).
		Int("g", in.G.Size()).
		Str("pattern", cfg.PatternKind()).
		Int("h", in.H.Size()).
		Int("k", in.K).
		Int64("seed", cfg.Seed()).
		Msg("instance generated")

	out := stdout
	if dst := fs.Arg(0); dst != "" {
		f, err := os.Create(dst)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitIO
		}
		defer f.Close()
		out = f
	}
	if err = graphio.Write(out, in); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitIO
	}

	return exitOK
}

// generate builds the instance described by cfg.
func generate(cfg *config.Config) (graphio.Input, error) {
	if cfg.Copies() < 1 {
		return graphio.Input{}, fmt.Errorf("generate: k=%d must be ≥ 1", cfg.Copies())
	}
	if cfg.MaxMultiplicity() < 1 {
		return graphio.Input{}, fmt.Errorf("generate: max-mult=%d must be ≥ 1", cfg.MaxMultiplicity())
	}
	g, err := build(cfg, cfg.HostKind(), cfg.HostSize(), cfg.Seed())
	if err != nil {
		return graphio.Input{}, fmt.Errorf("generate: host: %w", err)
	}
	h, err := build(cfg, cfg.PatternKind(), cfg.PatternSize(), cfg.Seed()+1)
	if err != nil {
		return graphio.Input{}, fmt.Errorf("generate: pattern: %w", err)
	}

	return graphio.Input{G: g, H: h, K: cfg.Copies()}, nil
}

func build(cfg *config.Config, kind string, n int, seed int64) (*graph.Graph, error) {
	cons, err := builder.ByName(kind, cfg.Param())
	if err != nil {
		return nil, err
	}
	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithMaxMultiplicity(cfg.MaxMultiplicity()),
	}
	if cfg.Loops() {
		opts = append(opts, builder.WithLoops())
	}

	return builder.BuildGraph(n, opts, cons)
}
