// Package app implements the clusterfield command: load configuration, build
// a field, print it.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/clusterfield/config"
	"github.com/katalvlaran/clusterfield/field"
	"github.com/katalvlaran/clusterfield/reveal"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// flags holds the command line. Grid and log values only override the
// configuration when given explicitly.
type flags struct {
	configPath string
	envFile    string
	size       int
	seed       int64
	policy     string
	conn       int
	occupancy  float64
	logLevel   string
	steps      bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("clusterfield", flag.ContinueOnError)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.envFile, "env-file", "", "dotenv file with CLUSTERFIELD_* variables")
	fs.IntVar(&f.size, "size", config.DefaultGridSize, "grid side length N")
	fs.Int64Var(&f.seed, "seed", 0, "generator seed (0 = from clock)")
	fs.StringVar(&f.policy, "policy", config.DefaultPolicy, "label policy: strict | merge")
	fs.IntVar(&f.conn, "conn", config.DefaultConnectivity, "neighbourhood: 4 | 8")
	fs.Float64Var(&f.occupancy, "occupancy", 0, "probability a cell is occupied [0.7]")
	fs.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "debug | info | warn | error")
	fs.BoolVar(&f.steps, "steps", false, "print every reveal step instead of the final grid")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: clusterfield [flags]")
		fmt.Fprintln(out, "\nBuilds a random N×N grid, labels its 4-connected clusters and prints it.")
		fmt.Fprintln(out, "'*' is an empty cell, '1' an unrevealed one, anything else a cluster label.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
	}
	return fs
}

// Run executes the command and returns its exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	var f flags
	fs := newFlagSet(&f)
	fs.SetOutput(stderr)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return ExitUsage
	}

	cfg, err := loadConfig(fs, &f)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailed
	}
	log, err := cfg.LoggerTo(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailed
	}
	defer func() { _ = log.Sync() }()

	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	if err := run(cfg, f.steps, log, outw); err != nil {
		log.Error("run failed", zap.Error(err))
		return ExitFailed
	}
	return ExitOK
}

// loadConfig reads the configuration and applies explicitly set flags.
func loadConfig(fs *flag.FlagSet, f *flags) (*config.Config, error) {
	var envFiles []string
	if f.envFile != "" {
		envFiles = append(envFiles, f.envFile)
	}
	cfg, err := config.Load(f.configPath, envFiles...)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "size":
			cfg.Grid.Size = f.size
		case "seed":
			cfg.Grid.Seed = f.seed
		case "policy":
			cfg.Grid.Policy = f.policy
		case "conn":
			cfg.Grid.Connectivity = f.conn
		case "occupancy":
			cfg.Grid.Occupancy = f.occupancy
		case "log-level":
			cfg.Log.Level = f.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, steps bool, log *zap.Logger, w io.Writer) error {
	opts, err := cfg.FieldOptions()
	if err != nil {
		return err
	}
	opts = append(opts, field.WithLogger(log))

	fld, err := field.Build(cfg.Grid.Size, opts...)
	if err != nil {
		return err
	}
	if err := writeSummary(w, fld); err != nil {
		return err
	}

	cur := reveal.New(fld)
	if !steps {
		return reveal.Render(w, cur.Snapshot())
	}
	if err := cur.Seek(0); err != nil {
		return err
	}
	for {
		if _, err := fmt.Fprintf(w, "\nstep %d/%d\n", cur.Step(), cur.Len()); err != nil {
			return err
		}
		if err := reveal.Render(w, cur.Snapshot()); err != nil {
			return err
		}
		if !cur.CanRedo() {
			return nil
		}
		cur.Redo()
	}
}

func writeSummary(w io.Writer, f *field.Field) error {
	seed := "n/a"
	if s, ok := f.Seed(); ok {
		seed = fmt.Sprint(s)
	}
	_, err := fmt.Fprintf(w, "grid %d×%d seed %s policy %s clusters %d\n",
		f.Size(), f.Size(), seed, f.Policy(), f.ClusterCount())
	return err
}
