package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	frameColor   = color.Gray{Y: 150}
	deflectColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	nodeColor    = color.Black
	supportColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	sectionFill  = color.RGBA{R: 100, G: 149, B: 237, A: 150}
)

// ExportFrame plots the undeformed frame (dashed) and the scaled deflected
// shape to an image file. The format follows the extension: .png, .svg
// or .pdf; anything else gets ".png" appended.
func ExportFrame(data FrameData, filename string) error {
	if len(data.Members) == 0 {
		return fmt.Errorf("diagram: frame has no members to plot")
	}

	p := plot.New()
	p.Title.Text = "Deflected Shape"
	if data.Title != "" {
		p.Title.Text = data.Title + " - Deflected Shape"
	}
	if data.Scale != 1 {
		p.Title.Text += fmt.Sprintf(" (×%g)", data.Scale)
	}
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	for i, m := range data.Members {
		frame, err := plotter.NewLine(toXYs(data.Undeformed(m)))
		if err != nil {
			return err
		}
		frame.LineStyle.Width = vg.Points(1)
		frame.LineStyle.Color = frameColor
		frame.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(frame)

		bent, err := plotter.NewLine(toXYs(data.Deflected(m, 24)))
		if err != nil {
			return err
		}
		bent.LineStyle.Width = vg.Points(2)
		bent.LineStyle.Color = deflectColor
		p.Add(bent)

		if i == 0 {
			p.Legend.Add("undeformed", frame)
			p.Legend.Add("deflected", bent)
		}
	}

	var free, supported plotter.XYs
	labels := plotter.XYLabels{}
	for _, n := range data.Nodes {
		xy := plotter.XY{X: n.X, Y: n.Y}
		if n.Supported {
			supported = append(supported, xy)
		} else {
			free = append(free, xy)
		}
		labels.XYs = append(labels.XYs, xy)
		labels.Labels = append(labels.Labels, fmt.Sprintf(" %d", n.ID))
	}
	if err := addNodes(p, free, nodeColor, draw.CircleGlyph{}); err != nil {
		return err
	}
	if err := addNodes(p, supported, supportColor, draw.BoxGlyph{}); err != nil {
		return err
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func addNodes(p *plot.Plot, pts plotter.XYs, c color.Color, shape draw.GlyphDrawer) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(4)
	s.GlyphStyle.Shape = shape
	p.Add(s)
	return nil
}

// ExportSection plots a section outline with its centroidal axis.
func ExportSection(outline []Point, centroidY float64, filename string) error {
	if len(outline) < 3 {
		return fmt.Errorf("diagram: section outline needs at least 3 vertices, got %d", len(outline))
	}

	p := plot.New()
	p.Title.Text = "Cross-Section"
	p.X.Label.Text = "Width"
	p.Y.Label.Text = "Height"

	poly, err := plotter.NewPolygon(toXYs(outline))
	if err != nil {
		return err
	}
	poly.Color = sectionFill
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(2)
	p.Add(poly)

	minX, maxX := outline[0].X, outline[0].X
	for _, v := range outline {
		minX, maxX = min(minX, v.X), max(maxX, v.X)
	}
	margin := (maxX - minX) * 0.1
	axis, err := plotter.NewLine(plotter.XYs{
		{X: minX - margin, Y: centroidY},
		{X: maxX + margin, Y: centroidY},
	})
	if err != nil {
		return err
	}
	axis.LineStyle.Width = vg.Points(1.5)
	axis.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(axis)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + margin, Y: centroidY}},
		Labels: []string{"centroid"},
	})
	if err != nil {
		return err
	}
	p.Add(lbl)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

func toXYs(pts []Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	return xys
}

// save writes the plot, creating the parent directory when needed.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
