package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// WritePDF saves a one-document summary with the displacement, reaction and
// end force tables.
func (r *Report) WritePDF(path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if r.Units != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Units: %s", r.Units))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Combination: %s", r.Combination))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Generated.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Max displacement: %.6e at node %d", r.MaxDisplacement, r.MaxNode))
	pdf.Ln(6)
	if r.HasCondition {
		pdf.Cell(0, 6, fmt.Sprintf("Condition number: %.3e", r.Condition))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	nodes := make([][]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		nodes = append(nodes, []string{
			fmt.Sprint(n.ID), fmt.Sprintf("%.4g", n.X), fmt.Sprintf("%.4g", n.Y),
			fmt.Sprintf("%.4e", n.DX), fmt.Sprintf("%.4e", n.DY), fmt.Sprintf("%.4e", n.RZ),
		})
	}
	table(pdf, "Nodal displacements", []string{"Node", "X", "Y", "DX", "DY", "RZ"}, 30, nodes)

	reactions := make([][]string, 0, len(r.Reactions))
	for _, rc := range r.Reactions {
		reactions = append(reactions, []string{
			fmt.Sprint(rc.Node), fmt.Sprintf("%.4f", rc.FX), fmt.Sprintf("%.4f", rc.FY), fmt.Sprintf("%.4f", rc.MZ),
		})
	}
	table(pdf, "Support reactions", []string{"Node", "FX", "FY", "MZ"}, 30, reactions)

	forces := make([][]string, 0, len(r.Elements))
	for _, e := range r.Elements {
		f := e.Forces
		forces = append(forces, []string{
			fmt.Sprint(e.ID), fmt.Sprintf("%d-%d", e.Node1, e.Node2),
			fmt.Sprintf("%.3f", f.N1), fmt.Sprintf("%.3f", f.V1), fmt.Sprintf("%.3f", f.M1),
			fmt.Sprintf("%.3f", f.N2), fmt.Sprintf("%.3f", f.V2), fmt.Sprintf("%.3f", f.M2),
		})
	}
	table(pdf, "Element end forces (local axes)", []string{"Elem", "Nodes", "N1", "V1", "M1", "N2", "V2", "M2"}, 22, forces)

	return pdf.OutputFileAndClose(path)
}

func table(pdf *gofpdf.Fpdf, title string, header []string, width float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range header {
		pdf.CellFormat(width, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for _, c := range row {
			pdf.CellFormat(width, 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}
