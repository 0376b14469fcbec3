package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	combosFile       string
	combosSimplified bool
)

var combosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Solve every NSCP load combination and find the governing one",
	Long: `Solve the frame once per NSCP 2015 load combination and report the
largest nodal translation for each. The combination with the largest
translation governs.

Loads are grouped by the "case" field of each load in the JSON file:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Loads without a case are dead loads. Combinations that leave the frame
without any load are skipped.

Examples:
  goframe combos -f portal.json
  goframe combos -f portal.json --simplified`,
	RunE: runCombos,
}

func init() {
	rootCmd.AddCommand(combosCmd)

	combosCmd.Flags().StringVarP(&combosFile, "file", "f", "", "Path to frame JSON file [required]")
	combosCmd.MarkFlagRequired("file")
	combosCmd.Flags().BoolVarP(&combosSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

type comboResult struct {
	node int
	peak float64
	err  error
}

func runCombos(cmd *cobra.Command, args []string) error {
	st, err := loadStructure(combosFile, "", false)
	if err != nil {
		return err
	}
	combinations := combinationSet(combosSimplified)
	out := cmd.OutOrStdout()

	results := make(map[string]comboResult, len(combinations))
	peak, governing, ok := nscp.Governing(combinations, func(combo nscp.LoadCombination) (float64, error) {
		st.UseCombination(combo)
		sol, err := fem.NewSolver(fem.WithLogger(logger)).Solve(st)
		if err != nil {
			results[combo.ID] = comboResult{err: err}
			return 0, err
		}
		node, d, _ := sol.MaxDisplacement()
		results[combo.ID] = comboResult{node: node, peak: d.Translation()}
		return d.Translation(), nil
	})

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NSCP 2015 LOAD COMBINATIONS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Load cases in model: %v\n", st.LoadCases())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tMax translation\tNode\n")
	fmt.Fprintf(w, "  ─\t───────────\t───────────────\t────\n")
	for _, combo := range combinations {
		r := results[combo.ID]
		if r.err != nil {
			fmt.Fprintf(w, "  %s\t%s\t—\t\t(%s)\n", combo.ID, combo.Description, fem.ReasonOf(r.err))
			continue
		}
		marker := ""
		if ok && combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.6e\t%d%s\n", combo.ID, combo.Description, r.peak, r.node, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	if !ok {
		return fmt.Errorf("no load combination could be solved")
	}

	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Fprintf(out, "  Max translation:       %.6e at node %d\n", peak, results[governing.ID].node)
	fmt.Fprintln(out)
	return nil
}
