package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile        string
	sectionWidth       float64
	sectionHeight      float64
	sectionShowDiagram bool
	sectionExportFile  string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute area and moment of inertia of a cross-section",
	Long: `Compute the geometric properties of a member cross-section: area,
centroid and second moment of area about the horizontal centroidal axis.

Give either a rectangle with --width and --height, or a polygon in a
JSON file. The same shape fields can be used inline in the "sections"
of a frame file.

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 0, "y": 0},
    {"x": 300, "y": 0},
    {"x": 300, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": 0, "y": 500}
  ]
}

Examples:
  goframe section --width 300 --height 500
  goframe section -f t-beam.json --diagram -o t-beam.png`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section JSON file")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Rectangle width")
	sectionCmd.Flags().Float64VarP(&sectionHeight, "height", "H", 0, "Rectangle height")
	sectionCmd.MarkFlagsMutuallyExclusive("file", "width")
	sectionCmd.MarkFlagsMutuallyExclusive("file", "height")
	sectionCmd.MarkFlagsRequiredTogether("width", "height")
	sectionCmd.MarkFlagsOneRequired("file", "width")

	// Diagram options
	sectionCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII section sketch")
	sectionCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export section plot to file (png, svg, pdf)")
}

func runSection(cmd *cobra.Command, args []string) error {
	var shape *section.Shape
	if sectionFile != "" {
		s, err := section.LoadFromFile(sectionFile)
		if err != nil {
			return fmt.Errorf("loading section: %w", err)
		}
		shape = s
	} else {
		shape = section.Rectangle(sectionWidth, sectionHeight)
	}

	props, err := shape.CalculateProperties()
	if err != nil {
		return fmt.Errorf("calculating properties: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                 CROSS-SECTION PROPERTIES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if shape.Name != "" {
		fmt.Fprintf(out, "  Section: %s\n", shape.Name)
	}
	if shape.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", shape.Description)
	}
	if len(shape.Vertices) > 0 {
		fmt.Fprintf(out, "  Polygon with %d vertices\n", len(shape.Vertices))
	} else {
		fmt.Fprintln(out, "  Solid rectangle")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "GEOMETRIC PROPERTIES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Overall width:\t%.4g\n", props.Width)
	fmt.Fprintf(w, "  Overall height:\t%.4g\n", props.Height)
	fmt.Fprintf(w, "  Area (A):\t%.6g\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t(%.4g, %.4g)\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Moment of inertia (I):\t%.6g\n", props.Inertia)
	w.Flush()
	fmt.Fprintln(out)

	lines := []string{
		fmt.Sprintf("A = %.6g", props.Area),
		fmt.Sprintf("I = %.6g", props.Inertia),
	}
	fmt.Fprint(out, diagram.DrawSummaryBox("SECTION FOR FRAME INPUT", lines))

	if sectionShowDiagram {
		fmt.Fprint(out, diagram.DrawSection(props.Width, props.Height, props.CentroidY-props.MinY))
	}

	if sectionExportFile != "" {
		outline := make([]diagram.Point, 0, len(shape.Outline()))
		for _, v := range shape.Outline() {
			outline = append(outline, diagram.Point{X: v.X, Y: v.Y})
		}
		path := cfg.OutputPath(sectionExportFile)
		if err := diagram.ExportSection(outline, props.CentroidY, path); err != nil {
			return fmt.Errorf("exporting %s: %w", path, err)
		}
		fmt.Fprintf(out, "\n  Diagram exported to: %s\n", path)
	}
	fmt.Fprintln(out)
	return nil
}
