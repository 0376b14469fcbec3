package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/config"
	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/alexiusacademia/goframe/internal/report"
	"github.com/spf13/cobra"
)

var (
	solveFile        string
	solveCombo       string
	solveSimplified  bool
	solveShowDiagram bool
	solveExportFile  string
	solveXLSXFile    string
	solvePDFFile     string
	solveScale       float64
	solveCondition   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a frame for displacements, reactions and end forces",
	Long: `Solve a 2D frame defined in a JSON file with the direct stiffness method.

Without --combo every load case is summed with factor 1. With --combo the
case loads are factored by the chosen NSCP 2015 load combination
(see 'goframe combos').

"units" names the force and length units of every number in the file
(default "N, mm"). A material takes either "e" in those units, or "fc"
in MPa or "steel": true, whose code moduli are converted to the model units.

Example JSON file structure:
{
  "name": "Portal",
  "units": "kN, m",
  "materials": [{"id": 1, "name": "C28", "fc": 28}],
  "sections": [{"id": 1, "width": 0.3, "height": 0.5}],
  "nodes": [{"id": 1, "x": 0, "y": 0}, {"id": 2, "x": 0, "y": 3}],
  "elements": [{"id": 1, "n1": 1, "n2": 2, "material": 1, "section": 1}],
  "supports": [{"node": 1, "x": true, "y": true, "rz": true}],
  "loads": [{"node": 2, "case": "D", "fx": 10}]
}

Examples:
  goframe solve -f portal.json
  goframe solve -f portal.json --combo 2 --diagram
  goframe solve -f portal.json -o deflected.png --xlsx results.xlsx --pdf report.pdf`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to frame JSON file [required]")
	solveCmd.MarkFlagRequired("file")

	solveCmd.Flags().StringVarP(&solveCombo, "combo", "c", "", "NSCP load combination ID to apply")
	solveCmd.Flags().BoolVarP(&solveSimplified, "simplified", "s", false, "Look --combo up in the simplified (gravity only) combinations")
	solveCmd.Flags().BoolVar(&solveCondition, "cond", false, "Estimate the condition number of the stiffness matrix")

	// Output options
	solveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show ASCII deflected shape")
	solveCmd.Flags().StringVarP(&solveExportFile, "output", "o", "", "Export deflected shape to file (png, svg, pdf)")
	solveCmd.Flags().StringVar(&solveXLSXFile, "xlsx", "", "Export results to an XLSX workbook")
	solveCmd.Flags().StringVar(&solvePDFFile, "pdf", "", "Export results to a PDF report")
	solveCmd.Flags().Float64Var(&solveScale, "scale", 0, "Displacement magnification for diagrams (0 uses "+config.EnvPlotScale+")")
}

// loadStructure reads a frame file and applies the requested combination.
func loadStructure(path, comboID string, simplified bool) (*model.Structure, error) {
	st, err := model.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading frame: %w", err)
	}
	if comboID != "" {
		combo, ok := nscp.FindCombination(comboID, combinationSet(simplified))
		if !ok {
			return nil, fmt.Errorf("unknown load combination %q", comboID)
		}
		st.UseCombination(combo)
	}
	logger.Info("frame loaded", "file", path, "nodes", st.NodeCount(), "elements", st.ElementCount(), "cases", st.LoadCases())
	return st, nil
}

func combinationSet(simplified bool) []nscp.LoadCombination {
	if simplified {
		return nscp.SimplifiedCombinations
	}
	return nscp.LoadCombinations
}

func runSolve(cmd *cobra.Command, args []string) error {
	st, err := loadStructure(solveFile, solveCombo, solveSimplified)
	if err != nil {
		return err
	}

	solver := fem.NewSolver(fem.WithLogger(logger), fem.WithConditionEstimate(solveCondition))
	sol, err := solver.Solve(st)
	if err != nil {
		return fmt.Errorf("solving %s: %w", solveFile, err)
	}

	out := cmd.OutOrStdout()
	rep := report.New(st, sol)
	if err := rep.WriteText(out); err != nil {
		return err
	}

	scale := solveScale
	if scale <= 0 {
		scale = cfg.PlotScale
	}
	frame := diagram.NewFrameData(st, sol, scale)

	if solveShowDiagram {
		fmt.Fprint(out, diagram.DrawFrame(frame, 60, 20))
	}

	exports := []struct {
		path  string
		label string
		write func(string) error
	}{
		{solveExportFile, "Diagram", func(p string) error { return diagram.ExportFrame(frame, p) }},
		{solveXLSXFile, "Workbook", rep.WriteWorkbook},
		{solvePDFFile, "Report", rep.WritePDF},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		path := cfg.OutputPath(e.path)
		if err := e.write(path); err != nil {
			return fmt.Errorf("exporting %s: %w", path, err)
		}
		fmt.Fprintf(out, "  %s exported to: %s\n", e.label, path)
	}
	fmt.Fprintln(out)
	return nil
}
