// SPDX-License-Identifier: MIT

// Command kembed reads G, H and k from a file, extends G with the fewest
// edits so it holds k copies of H, and prints the full report.
//
//	kembed [-a] [-pretty] [-config file] [-log-level level] src [dst]
//
// Without dst the report goes to stdout. Input and usage errors abort before
// any solving, with exit status 2; I/O failures exit with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/kembed/config"
	"github.com/katalvlaran/kembed/embed"
	"github.com/katalvlaran/kembed/graphio"
	"github.com/katalvlaran/kembed/report"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

const usageText = `Usage:
kembed [-a] [-pretty] [-config file] [-log-level level] src [dst]

  -a     calculate approximation
  src    source file with both graph descriptions and an optional number k
  dst    optional destination file for the report
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kembed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}
	approx := fs.Bool("a", false, "use the approximate solver")
	pretty := fs.Bool("pretty", false, "render matrices with brackets")
	cfgPath := fs.String("config", "", "optional config file (yaml, json or toml)")
	logLevel := fs.String("log-level", "", "zerolog level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg := config.NewConfig()
	if *cfgPath != "" {
		if err := cfg.LoadFromFile(*cfgPath); err != nil {
			fmt.Fprintf(stderr, "Error: config %q: %v\n", *cfgPath, err)
			return exitUsage
		}
	}
	if *approx {
		cfg.Set(config.KeyAlgorithm, embed.Approximate.String())
	}
	if *pretty {
		cfg.Set(config.KeyPretty, true)
	}
	if *logLevel != "" {
		cfg.Set(config.KeyLogLevel, *logLevel)
	}
	logger := cfg.CreateLogger(stderr)

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.Usage()
		return exitUsage
	}
	src, dst := fs.Arg(0), fs.Arg(1)
	if dst != "" {
		if _, err := os.Stat(filepath.Dir(dst)); err != nil {
			fmt.Fprintf(stderr, "Error: destination directory %q does not exist.\n", filepath.Dir(dst))
			return exitUsage
		}
	}

	algo, err := cfg.Algorithm()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	in, err := graphio.ReadFile(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: source file %q does not exist.\n", src)
		} else {
			fmt.Fprintf(stderr, "Failure while reading source file: %v\n", err)
		}
		fs.Usage()
		return exitUsage
	}
	if in.H.Size() == 0 {
		fmt.Fprintln(stderr, "Please provide a non-empty graph H!")
		fs.Usage()
		return exitUsage
	}
	logger.Info().
		Str("src", src).
		Int("g", in.G.Size()).
		Int("h", in.H.Size()).
		Int("k", in.K).
		Stringer("algorithm", algo).
		Msg("input loaded")

	res, err := embed.Solve(in.G, in.H, in.K, embed.WithAlgorithm(algo), embed.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	logger.Info().
		Int("cost", res.Cost).
		Int("missing", res.MissingVertices).
		Int("candidates", res.Stats.Candidates).
		Msg("solved")

	summary := report.Summary{G: in.G, H: in.H, K: in.K, Result: res, Pretty: cfg.Pretty()}
	if dst == "" {
		if err = report.Write(stdout, summary); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitIO
		}

		return exitOK
	}

	f, err := os.Create(dst)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitIO
	}
	if err = report.Write(f, summary); err != nil {
		_ = f.Close()
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitIO
	}
	if err = f.Close(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitIO
	}
	logger.Info().Str("dst", dst).Msg("report written")

	return exitOK
}
