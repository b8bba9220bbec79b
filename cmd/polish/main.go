package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang/glog"
	"github.com/jpschroeder/polish"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// polishFlags are the command line flags of the calculator.
type polishFlags struct {
	ConfigFilename string
	Exprs          cli.StringSlice
	DumpAST        bool
	NoColor        bool
	CacheSize      int
	Verbose        int
}

func (flags *polishFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Destination: &flags.ConfigFilename,
			Name:        "config",
			Usage:       "YAML file with prompt, history, variables and aliases.",
		},
		&cli.StringSliceFlag{
			Destination: &flags.Exprs,
			Name:        "expr",
			Aliases:     []string{"e"},
			Usage:       "Evaluate the given lines in order and exit.",
		},
		&cli.BoolFlag{
			Destination: &flags.DumpAST,
			Name:        "ast",
			Usage:       "Dump the parsed tree of every line.",
		},
		&cli.BoolFlag{
			Destination: &flags.NoColor,
			Name:        "no-color",
			Usage:       "Do not color the output.",
		},
		&cli.IntFlag{
			Destination: &flags.CacheSize,
			Name:        "cache-size",
			Value:       -1,
			Usage:       "Number of parsed lines to cache, 0 disables the cache. Overrides the config.",
		},
		&cli.IntFlag{
			Destination: &flags.Verbose,
			Name:        "verbose",
			Aliases:     []string{"v"},
			Usage:       "Log verbosity, 1 logs every line, 2 also logs tokens.",
		},
	}
}

func main() {
	var flags polishFlags
	app := &cli.App{
		Name:  "polish",
		Usage: "A prefix notation calculator. Reads one expression per line from stdin.",
		Flags: flags.AsCliFlags(),
		Before: func(c *cli.Context) error {
			// glog registers its flags on the standard flag set.
			if err := flag.Set("logtostderr", "true"); err != nil {
				return errors.Wrap(err, "routing logs to stderr")
			}
			if err := flag.Set("v", strconv.Itoa(flags.Verbose)); err != nil {
				return errors.Wrapf(err, "setting log verbosity %d", flags.Verbose)
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return run(&flags)
		},
	}

	err := app.Run(os.Args)
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "polish: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *polishFlags) error {
	cfg, err := LoadConfig(flags.ConfigFilename)
	if err != nil {
		return err
	}

	cacheSize := cacheSizeFor(cfg, flags.CacheSize)
	session, err := polish.NewSession(cacheSize)
	if err != nil {
		return err
	}
	cfg.Apply(session.Env())
	glog.V(1).Infof("session ready: %d variables, %d aliases, cache size %d",
		len(cfg.Variables), len(cfg.Aliases), cacheSize)

	colored := (cfg.Color == nil || *cfg.Color) && !flags.NoColor && isTerminal(os.Stdout.Fd())
	r := newREPL(session, cfg, os.Stdout, colored)
	r.dumpAST = flags.DumpAST

	if exprs := flags.Exprs.Value(); len(exprs) > 0 {
		for _, line := range exprs {
			if !r.handle(line) {
				break
			}
		}
		return nil
	}

	if isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd()) {
		return r.runInteractive()
	}
	return r.runLines(os.Stdin)
}

// cacheSizeFor picks the parse cache size: the flag when set, then the
// config, then the default.
func cacheSizeFor(cfg *Config, flagValue int) int {
	if flagValue >= 0 {
		return flagValue
	}
	if cfg.CacheSize != nil {
		return *cfg.CacheSize
	}
	return polish.DefaultCacheSize
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
