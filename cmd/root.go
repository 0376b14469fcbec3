package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string

	cfg    = &config.Config{LogLevel: slog.LevelWarn, PlotScale: config.DefaultPlotScale}
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "2D Frame Analysis Tool",
	Long: `goframe - Go 2D Frame Analyzer

A CLI tool for the linear static analysis of plane frames
with the direct stiffness method.

This tool helps structural engineers:
  - Solve nodal displacements, support reactions and member end forces
  - Check a model for missing supports, loads or disconnected parts
  - Find the governing NSCP 2015 load combination
  - Compute section area and moment of inertia
  - Export deflected shapes, XLSX workbooks and PDF reports

Models are described in JSON files; see 'goframe solve --help'.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			lvl, err := config.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			c.LogLevel = lvl
		}
		cfg = c
		logger = config.NewLogger(c.LogLevel, cmd.ErrOrStderr())
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goframe v%-47s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go 2D Frame Analyzer                                    ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  A CLI tool for the linear static analysis of plane frames.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Direct stiffness solve: displacements, reactions, end forces")
		fmt.Fprintln(out, "    • Model checks: supports, loads, connectivity, overlaps")
		fmt.Fprintln(out, "    • NSCP 2015 load combinations over named load cases")
		fmt.Fprintln(out, "    • Section properties for rectangles and polygons")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goframe --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides "+config.EnvLogLevel+")")
}
