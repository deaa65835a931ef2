// SPDX-License-Identifier: MIT
// Package: tourbound/cmd/tourbound
//
// commands.go — command tree, flags, and run functions.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbound/bnb"
	"github.com/katalvlaran/tourbound/costmatrix"
	"github.com/katalvlaran/tourbound/layout"
	"github.com/katalvlaran/tourbound/stream"
)

var (
	cfg        = DefaultConfig()
	configPath string
	verbosity  string

	// gen flags
	genCount    int
	genWidth    float64
	genHeight   float64
	genSpacing  float64
	genSeed     int64
	genIDScheme string
	genOut      string

	// solve flags
	solveSource string
	solveEps    float64
	solveExact  bool
	solveEvents string
	solveQuiet  bool

	// serve flags
	serveAddr     string
	serveCapacity int

	rootCmd = &cobra.Command{
		Use:   "tourbound",
		Short: "Exact tour solving with a fully traced search",
		Long: `tourbound works on symmetric planar tour instances: generate a city
layout, solve it exactly with a fully traced branch-and-bound search, or
serve solves and websocket trace replays over HTTP.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(configPath, &cfg); err != nil {
				return err
			}
			// Explicit flags beat the config file.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = serveAddr
			}
			if cmd.Flags().Changed("capacity") {
				cfg.Capacity = serveCapacity
			}
			if cmd.Flags().Changed("verbosity") {
				cfg.Verbosity = verbosity
			}
			return initLogging(cfg.Verbosity)
		},
	}

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate a city layout and write it as a points file",
		Args:  cobra.NoArgs,
		RunE:  runGen,
	}

	solveCmd = &cobra.Command{
		Use:   "solve [points.yaml]",
		Short: "Solve an instance exactly and print the optimal tour",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve solves and trace replays over HTTP and websocket",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML config file (addr, capacity, verbosity)")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", DefaultConfig().Verbosity,
		"Log level: debug, info, warn, or error")

	rootCmd.AddCommand(genCmd)
	genCmd.Flags().IntVarP(&genCount, "cities", "n", 10, "Number of cities to place")
	genCmd.Flags().Float64Var(&genWidth, "width", 800, "Field width")
	genCmd.Flags().Float64Var(&genHeight, "height", 600, "Field height")
	genCmd.Flags().Float64Var(&genSpacing, "spacing", 48, "Minimum pairwise distance between cities")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "RNG seed (0 uses the fixed default stream)")
	genCmd.Flags().StringVar(&genIDScheme, "ids", "alpha", "City id scheme: alpha or decimal")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "points.yaml", "Output points file")

	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveSource, "source", "",
		"Start city id (default: first city in the file)")
	solveCmd.Flags().Float64Var(&solveEps, "eps", 0,
		"Improvement tolerance (0 keeps comparisons exact)")
	solveCmd.Flags().BoolVar(&solveExact, "exact", false,
		"Keep exact float distances instead of integer units")
	solveCmd.Flags().StringVar(&solveEvents, "events", "",
		"Write the full search trace to this JSON file")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false,
		"Suppress the result table")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", DefaultConfig().Addr, "Listen address")
	serveCmd.Flags().IntVar(&serveCapacity, "capacity", DefaultConfig().Capacity,
		"Run store capacity (oldest runs evicted beyond it)")
}

// runGen places cities and writes the points file.
func runGen(cmd *cobra.Command, args []string) error {
	// Flag validation happens here so user mistakes surface as CLI errors,
	// not as option-constructor panics.
	if genCount < 1 {
		return fmt.Errorf("gen: need at least 1 city, got %d", genCount)
	}
	if genWidth <= 0 || genHeight <= 0 {
		return fmt.Errorf("gen: field sides must be positive, got %gx%g", genWidth, genHeight)
	}
	if genSpacing < 0 {
		return fmt.Errorf("gen: spacing must be non-negative, got %g", genSpacing)
	}

	opts := []layout.Option{
		layout.WithBounds(genWidth, genHeight),
		layout.WithMinSpacing(genSpacing),
		layout.WithSeed(genSeed),
	}
	switch genIDScheme {
	case "alpha":
		opts = append(opts, layout.WithIDScheme(layout.AlphaID))
	case "decimal":
		opts = append(opts, layout.WithIDScheme(layout.DecimalID))
	default:
		return fmt.Errorf("gen: unknown id scheme %q (want alpha or decimal)", genIDScheme)
	}

	pts, err := layout.Generate(genCount, opts...)
	if err != nil {
		return err
	}
	if err := writePointsFile(genOut, pts); err != nil {
		return err
	}

	slog.Debug("layout generated", "cities", len(pts), "seed", genSeed, "out", genOut)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d cities to %s\n", len(pts), genOut)
	return nil
}

// runSolve loads a points file, solves it, and reports the result.
func runSolve(cmd *cobra.Command, args []string) error {
	pts, err := readPointsFile(args[0])
	if err != nil {
		return err
	}

	var buildOpts []costmatrix.BuildOption
	if solveExact {
		buildOpts = append(buildOpts, costmatrix.WithExactDistances())
	}
	matrix, index, err := costmatrix.FromPoints(pts, buildOpts...)
	if err != nil {
		return err
	}

	source := solveSource
	if source == "" {
		source = index.IDs()[0]
	}

	opts := bnb.DefaultOptions()
	opts.Eps = solveEps

	// Cobra sets the command context only inside Execute; direct calls
	// (tests, scripts) leave it nil, and the solver requires a real one.
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	res, err := bnb.SolveContext(ctx, matrix, index, source, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	slog.Debug("solve finished",
		"cities", index.Len(),
		"explored", res.Explored,
		"events", len(res.Events),
		"elapsed", elapsed)

	if solveEvents != "" {
		raw, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode trace: %w", err)
		}
		if err := os.WriteFile(solveEvents, raw, 0o644); err != nil {
			return fmt.Errorf("write trace: %w", err)
		}
	}

	if solveQuiet {
		return nil
	}

	out := cmd.OutOrStdout()
	if res.Best == nil {
		fmt.Fprintln(out, "no feasible tour")
	} else {
		fmt.Fprintf(out, "tour     : %s\n", strings.Join(res.Best.Cities, " → "))
		fmt.Fprintf(out, "cost     : %g\n", res.Best.Cost)
	}
	fmt.Fprintf(out, "cities   : %d\n", index.Len())
	fmt.Fprintf(out, "source   : %s\n", source)
	fmt.Fprintf(out, "explored : %d\n", res.Explored)
	fmt.Fprintf(out, "events   : %d\n", len(res.Events))
	fmt.Fprintf(out, "elapsed  : %s\n", elapsed.Round(time.Microsecond))
	return nil
}

// runServe starts the HTTP service and blocks until the listener fails.
func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(gin.ReleaseMode)

	svc, err := stream.NewService(stream.Config{
		Capacity: cfg.Capacity,
		Logger:   slog.Default(),
	})
	if err != nil {
		return err
	}

	slog.Info("starting service", "addr", cfg.Addr, "capacity", cfg.Capacity)
	return svc.Run(cfg.Addr)
}
