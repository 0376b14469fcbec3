// Package report turns a solved frame into tables: plain text for the
// terminal, an XLSX workbook and a PDF summary.
package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/goframe/internal/fem"
	"github.com/alexiusacademia/goframe/internal/model"
)

// NodeRow is one node with its displacement.
type NodeRow struct {
	ID         int
	X, Y       float64
	DX, DY, RZ float64
}

// ReactionRow is the reaction at one supported node.
type ReactionRow struct {
	Node       int
	FX, FY, MZ float64
}

// ElementRow holds the local end forces of one element.
type ElementRow struct {
	ID           int
	Node1, Node2 int
	Length       float64
	Forces       fem.EndForces
}

// Report is a flat, printable view of a solution.
type Report struct {
	Title       string
	Units       string
	Combination string
	Generated   time.Time

	Nodes     []NodeRow
	Reactions []ReactionRow
	Elements  []ElementRow

	MaxNode         int
	MaxDisplacement float64
	Condition       float64
	HasCondition    bool
}

// New collects the rows of a report from a structure and its solution.
func New(st *model.Structure, sol *fem.Solution) *Report {
	combo := st.Combination()
	r := &Report{
		Title:       st.Name,
		Units:       st.Units,
		Combination: fmt.Sprintf("%s: %s", combo.ID, combo.Description),
		Generated:   time.Now(),
	}
	if r.Title == "" {
		r.Title = "Frame Analysis"
	}

	for _, id := range sol.NodeIDs() {
		n, _ := st.Node(id)
		d, _ := sol.Displacement(id)
		r.Nodes = append(r.Nodes, NodeRow{ID: id, X: n.X, Y: n.Y, DX: d.DX, DY: d.DY, RZ: d.RZ})
		if rc, ok := sol.Reaction(id); ok {
			r.Reactions = append(r.Reactions, ReactionRow{Node: id, FX: rc.FX, FY: rc.FY, MZ: rc.MZ})
		}
	}

	for _, id := range sol.ElementIDs() {
		e, _ := st.Element(id)
		a, _ := st.Node(e.Node1)
		b, _ := st.Node(e.Node2)
		f, _ := sol.ElementForces(id)
		r.Elements = append(r.Elements, ElementRow{
			ID:     id,
			Node1:  e.Node1,
			Node2:  e.Node2,
			Length: math.Hypot(b.X-a.X, b.Y-a.Y),
			Forces: f,
		})
	}

	if node, d, ok := sol.MaxDisplacement(); ok {
		r.MaxNode, r.MaxDisplacement = node, d.Translation()
	}
	r.Condition, r.HasCondition = sol.Condition()
	return r
}

// WriteText prints the report as aligned tables.
func (r *Report) WriteText(out io.Writer) error {
	ew := &errWriter{w: out}

	ew.println()
	ew.println("═══════════════════════════════════════════════════════════════")
	ew.printf("     %s\n", r.Title)
	ew.println("═══════════════════════════════════════════════════════════════")
	if r.Units != "" {
		ew.printf("  Units:       %s\n", r.Units)
	}
	ew.printf("  Combination: %s\n", r.Combination)
	ew.println()

	ew.println("NODAL DISPLACEMENTS:")
	ew.println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Node\tX\tY\tDX\tDY\tRZ\t")
	for _, n := range r.Nodes {
		fmt.Fprintf(w, "  %d\t%.4g\t%.4g\t%.6e\t%.6e\t%.6e\t\n", n.ID, n.X, n.Y, n.DX, n.DY, n.RZ)
	}
	w.Flush()
	ew.println()

	ew.println("SUPPORT REACTIONS:")
	ew.println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Node\tFX\tFY\tMZ\t")
	for _, rc := range r.Reactions {
		fmt.Fprintf(w, "  %d\t%.4f\t%.4f\t%.4f\t\n", rc.Node, rc.FX, rc.FY, rc.MZ)
	}
	w.Flush()
	ew.println()

	ew.println("ELEMENT END FORCES (local axes):")
	ew.println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(ew, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "  Elem\tNodes\tL\tN1\tV1\tM1\tN2\tV2\tM2\t")
	for _, e := range r.Elements {
		f := e.Forces
		fmt.Fprintf(w, "  %d\t%d-%d\t%.4g\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			e.ID, e.Node1, e.Node2, e.Length, f.N1, f.V1, f.M1, f.N2, f.V2, f.M2)
	}
	w.Flush()
	ew.println()

	ew.printf("  Max displacement: %.6e at node %d\n", r.MaxDisplacement, r.MaxNode)
	if r.HasCondition {
		ew.printf("  Condition number: %.3e\n", r.Condition)
	}
	return ew.err
}

// errWriter keeps the first write error so the table code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) { fmt.Fprintf(e, format, args...) }

func (e *errWriter) println(args ...any) { fmt.Fprintln(e, args...) }
