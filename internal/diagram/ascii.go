package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Characters used by DrawFrame.
const (
	glyphFrame   = '·'
	glyphDeflect = '*'
	glyphNode    = 'o'
	glyphSupport = '#'
)

// DrawFrame renders the undeformed frame and its scaled deflected shape on
// a character grid of the given size. Terminal cells are about twice as
// tall as they are wide, so the vertical scale is halved.
func DrawFrame(data FrameData, cols, rows int) string {
	if cols < 8 {
		cols = 8
	}
	if rows < 4 {
		rows = 4
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  DEFLECTED SHAPE")
	if data.Scale != 1 {
		sb.WriteString(fmt.Sprintf(" (displacements ×%g)", data.Scale))
	}
	sb.WriteString("\n  ───────────────\n")

	minX, minY, maxX, maxY, ok := data.bounds(16)
	if !ok {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}

	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 && spanY == 0 {
		spanX = 1
	}
	k := math.Inf(1)
	if spanX > 0 {
		k = float64(cols-1) / spanX
	}
	if spanY > 0 {
		k = math.Min(k, float64(rows-1)*2/spanY)
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", cols))
	}
	plotPoint := func(p Point, ch rune) {
		c := int(math.Round((p.X - minX) * k))
		r := rows - 1 - int(math.Round((p.Y-minY)*k/2))
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return
		}
		if ch == glyphFrame && grid[r][c] != ' ' {
			return
		}
		grid[r][c] = ch
	}
	plotLine := func(pts []Point, ch rune) {
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X)*k, math.Abs(b.Y-a.Y)*k/2))) + 1
			for s := 0; s <= steps; s++ {
				t := float64(s) / float64(steps)
				plotPoint(Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, ch)
			}
		}
	}

	for _, m := range data.Members {
		plotLine(data.Deflected(m, 16), glyphDeflect)
	}
	for _, m := range data.Members {
		plotLine(data.Undeformed(m), glyphFrame)
	}
	for _, n := range data.Nodes {
		ch := glyphNode
		if n.Supported {
			ch = glyphSupport
		}
		plotPoint(Point{X: n.X, Y: n.Y}, ch)
	}

	for _, row := range grid {
		sb.WriteString("  ")
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  %c = node   %c = supported node\n", glyphNode, glyphSupport))
	sb.WriteString(fmt.Sprintf("  %c = undeformed   %c = deflected\n", glyphFrame, glyphDeflect))
	return sb.String()
}

// DrawSection draws a rectangular outline of a cross-section with its
// centroidal axis marked. centroidY is measured from the bottom.
func DrawSection(width, height, centroidY float64) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 12
	if width > 0 && height > 0 {
		heightChars = int(math.Round(float64(widthChars) * height / width / 2))
		heightChars = max(4, min(heightChars, 24))
	}
	naLine := heightChars
	if height > 0 {
		naLine = heightChars - int(math.Round(centroidY/height*float64(heightChars)))
	}

	sb.WriteString("\n")
	sb.WriteString("  CROSS-SECTION\n")
	sb.WriteString("  ─────────────\n")
	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			if i == naLine {
				sb.WriteString(fmt.Sprintf("  │%s│ ◄─ centroid, y = %.4g", strings.Repeat("─ ", widthChars/2), centroidY))
			} else {
				sb.WriteString(fmt.Sprintf("  │%s│", strings.Repeat(" ", widthChars)))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  b = %.4g, h = %.4g\n", width, height))
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes; %-*s counts bytes.
func pad(s string, n int) string {
	if w := len([]rune(s)); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
