package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteWorkbook.
const (
	SheetSummary       = "Summary"
	SheetDisplacements = "Displacements"
	SheetReactions     = "Reactions"
	SheetForces        = "Element Forces"
)

// WriteWorkbook saves the report as an XLSX file with one sheet per table.
func (r *Report) WriteWorkbook(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{
		{"Title", r.Title},
		{"Units", r.Units},
		{"Combination", r.Combination},
		{"Generated", r.Generated.Format("2006-01-02 15:04")},
		{"Max displacement", r.MaxDisplacement},
		{"At node", r.MaxNode},
	}
	if r.HasCondition {
		summary = append(summary, []any{"Condition number", r.Condition})
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summary)), header); err != nil {
		return err
	}

	nodes := [][]any{{"Node", "X", "Y", "DX", "DY", "RZ"}}
	for _, n := range r.Nodes {
		nodes = append(nodes, []any{n.ID, n.X, n.Y, n.DX, n.DY, n.RZ})
	}
	reactions := [][]any{{"Node", "FX", "FY", "MZ"}}
	for _, rc := range r.Reactions {
		reactions = append(reactions, []any{rc.Node, rc.FX, rc.FY, rc.MZ})
	}
	forces := [][]any{{"Element", "Node1", "Node2", "Length", "N1", "V1", "M1", "N2", "V2", "M2"}}
	for _, e := range r.Elements {
		fe := e.Forces
		forces = append(forces, []any{e.ID, e.Node1, e.Node2, e.Length, fe.N1, fe.V1, fe.M1, fe.N2, fe.V2, fe.M2})
	}

	for _, t := range []struct {
		name string
		rows [][]any
	}{
		{SheetDisplacements, nodes},
		{SheetReactions, reactions},
		{SheetForces, forces},
	} {
		if _, err := f.NewSheet(t.name); err != nil {
			return err
		}
		if err := writeRows(f, t.name, t.rows); err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(t.rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(t.name, "A1", last, header); err != nil {
			return err
		}
		if err := f.SetColWidth(t.name, "A", "J", 14); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// readDisplacements loads the displacement table back from a workbook
// written by WriteWorkbook.
func readDisplacements(path string) ([]NodeRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(SheetDisplacements)
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("report: sheet %q is empty", SheetDisplacements)
	}

	var out []NodeRow
	for i, row := range rows[1:] {
		if len(row) < 6 {
			return nil, fmt.Errorf("report: row %d has %d columns, want 6", i+2, len(row))
		}
		var vals [6]float64
		for j := range vals {
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				return nil, fmt.Errorf("report: row %d column %d: %w", i+2, j+1, err)
			}
			vals[j] = v
		}
		out = append(out, NodeRow{ID: int(vals[0]), X: vals[1], Y: vals[2], DX: vals[3], DY: vals[4], RZ: vals[5]})
	}
	return out, nil
}
