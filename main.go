package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rfielding/hilbert-deduction/config"
	"github.com/rfielding/hilbert-deduction/hilbert"
	"github.com/rfielding/hilbert-deduction/script"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var (
	cfgPath string
	verbose bool
	output  string
	metrics bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hilbert",
		Short: "Hilbert-style propositional proofs and the Deduction Theorem",
		Long: `hilbert builds proofs in a Hilbert system with axiom schemas A1-A3 and
modus ponens, checks proof scripts, and discharges premises with the
Deduction Theorem.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Format = output
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Output.Metrics = metrics
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err = newLogger(cfg.Logging, verbose)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: summary, dot, mermaid")
	rootCmd.PersistentFlags().BoolVar(&metrics, "metrics", false, "append a metrics table")

	rootCmd.AddCommand(newDemoCmd(), newCheckCmd(), newDeduceCmd(), newDotCmd(), newConfigCmd())
	return rootCmd
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the canned example proofs and discharge a premise from each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	examples, err := Examples(hilbert.WithLogger(logger))
	if err != nil {
		return err
	}
	for i, ex := range examples {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", ex.Name)
		if err := render(w, ex.Proof); err != nil {
			return err
		}

		out, err := hilbert.Deduce(ex.Proof, ex.Discharge)
		if err != nil {
			return fmt.Errorf("%s: %w", ex.Name, err)
		}
		if err := hilbert.Verify(out); err != nil {
			return fmt.Errorf("%s: %w", ex.Name, err)
		}
		fmt.Fprintf(w, "\nDischarging %s:\n", ex.Discharge)
		if err := render(w, out); err != nil {
			return err
		}
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Build and verify proof scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := checkScripts(cmd.Context(), args, cfg.Check.Workers)

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", r.path, r.err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s: %s in %d lines\n", r.path, r.conclusion, r.lines)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scripts failed", failed, len(results))
			}
			return nil
		},
	}
}

type checkResult struct {
	path       string
	conclusion hilbert.Formula
	lines      int
	err        error
}

// checkScripts runs every script on at most workers goroutines. Results
// keep the order of paths.
func checkScripts(ctx context.Context, paths []string, workers int) []checkResult {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]checkResult, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = checkResult{path: path, err: err}
				return nil
			}
			results[i] = checkScript(path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func checkScript(path string) checkResult {
	log := logger.With(zap.String("script", path))
	r := checkResult{path: path}

	s, err := script.Load(path)
	if err != nil {
		r.err = err
		log.Warn("script rejected", zap.Error(err))
		return r
	}
	res, err := s.Run(nil, hilbert.WithLogger(log))
	if err != nil {
		r.err = err
		log.Warn("script rejected", zap.Error(err))
		return r
	}

	pr := res.Final()
	r.lines = pr.Len()
	r.conclusion, r.err = pr.Conclude()
	log.Info("script checked", zap.Int("lines", r.lines))
	return r
}

func newDeduceCmd() *cobra.Command {
	var premises []string

	cmd := &cobra.Command{
		Use:   "deduce FILE",
		Short: "Discharge premises of a proof script with the Deduction Theorem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			extra := make([]hilbert.Formula, 0, len(premises))
			for _, src := range premises {
				f, err := script.ParseFormula(src)
				if err != nil {
					return fmt.Errorf("--premise %q: %w", src, err)
				}
				extra = append(extra, f)
			}
			if len(extra) == 0 && len(s.Deduce) == 0 {
				return errors.New("nothing to discharge: the script has no deduce list and no --premise was given")
			}

			res, err := s.Run(extra, hilbert.WithLogger(logger))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res.Final())
		},
	}
	cmd.Flags().StringArrayVarP(&premises, "premise", "p", nil, "premise to discharge, in script syntax (repeatable)")
	return cmd
}

func newDotCmd() *cobra.Command {
	var (
		format  string
		deduced bool
	)

	cmd := &cobra.Command{
		Use:   "dot FILE",
		Short: "Render a proof script's dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			res, err := s.Run(nil, hilbert.WithLogger(logger))
			if err != nil {
				return err
			}
			pr := res.Proof
			if deduced {
				pr = res.Final()
			}

			switch format {
			case "dot":
				_, err = io.WriteString(cmd.OutOrStdout(), pr.GenerateGraphviz())
				return err
			case "mermaid":
				return pr.WriteMermaid(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown graph format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "graph format: dot, mermaid")
	cmd.Flags().BoolVar(&deduced, "deduced", false, "render the proof after the deduce list is discharged")
	return cmd
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hilbert config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the --config path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				return errors.New("no config path: pass --config")
			}
			if _, err := os.Stat(cfgPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
			}
			if err := cfg.Save(cfgPath); err != nil {
				return err
			}
			logger.Info("config written", zap.String("path", cfgPath))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

// render writes pr in the configured output format.
func render(w io.Writer, pr *hilbert.Proof) error {
	var err error
	switch cfg.Output.Format {
	case "dot":
		_, err = io.WriteString(w, pr.GenerateGraphviz())
	case "mermaid":
		err = pr.WriteMermaid(w)
	default:
		err = hilbert.WriteSummary(w, pr)
	}
	if err != nil || !cfg.Output.Metrics {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s", hilbert.CollectMetrics(pr).GenerateMetricsTable())
	return err
}
