// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ivanshim/lexmigrate/catalog"
	"github.com/ivanshim/lexmigrate/config"
	"github.com/ivanshim/lexmigrate/lexeme"
	"github.com/ivanshim/lexmigrate/migrate"
)

func main() {
	os.Exit(main1())
}

func main1() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "lexmigrate: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "lexmigrate",
		Short:         "Migrate front-end parsers from typed tokens to lexeme matching",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().String("config", "", "configuration file (default ./lexmigrate.yaml if present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress details")

	root.AddCommand(newRunCmd(), newModulesCmd(), newRulesCmd())
	return root
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "lexmigrate",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite the selected modules in place",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	}
	f := cmd.Flags()
	f.String("root", config.DefaultRoot, "directory holding the src_<module> trees")
	f.StringSlice("module", nil, "module to migrate (repeatable; default all)")
	f.String("ext", config.DefaultExt, "source file extension")
	f.StringSlice("exclude", config.DefaultExclude, "directory names to skip")
	f.Bool("diff", false, "print diffs instead of writing files")
	f.Int("jobs", config.DefaultJobs, "files to process in parallel")
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	reg := lexeme.Builtin()
	if err := cfg.Validate(reg); err != nil {
		return newErrUsage("%w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}

	d := &migrate.Driver{
		Root:    cfg.Root,
		Ext:     cfg.Ext,
		Exclude: cfg.Exclude,
		Diff:    cfg.Diff,
		Jobs:    cfg.Jobs,
		Verbose: cfg.Verbose,
		Stdout:  cmd.OutOrStdout(),
		Logger:  logger,
	}
	report, err := d.Run(cmd.Context(), cfg.Selected(reg))
	if err != nil {
		if report == nil {
			return newErrPrecondition("root %s: %w", cfg.Root, err)
		}
		return err
	}
	logger.Info(report.Summary())
	return nil
}

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the known modules and their lexeme tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, spec := range lexeme.Builtin().Specs() {
				t, f := spec.Booleans()
				fmt.Fprintf(w, "%-18s %-44s %2d lexemes  %s/%s\n", spec.Name, spec.Dispatcher(), len(spec.Lexemes), t, f)
			}
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [module]",
		Short: "List the rewrite rules applied to a module, in order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default
			if len(args) == 1 {
				spec, ok := lexeme.Builtin().Lookup(args[0])
				if !ok {
					return newErrUsage("unknown module %q", args[0])
				}
				cat = catalog.ForModule(spec)
			}
			w := cmd.OutOrStdout()
			for _, p := range cat.Passes {
				fmt.Fprintf(w, "%s\n", p.Name)
				for _, r := range p.Rules {
					fmt.Fprintf(w, "\t%s\n", r.Name)
				}
			}
			return nil
		},
	}
}
