// Package overlay draws a modal on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Placement controls overlay alignment. The zero value pins the overlay to
// the top left corner.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Compose overlays foreground atop background. Background cells outside the
// overlay bounds are kept, styling included.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	if width <= 0 || height <= 0 {
		return foreground
	}
	bgLines := normalize(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	overlayWidth := 0
	for _, line := range fgLines {
		overlayWidth = max(overlayWidth, lipgloss.Width(line))
	}
	overlayWidth = min(overlayWidth, width)
	overlayHeight := min(len(fgLines), height)
	if overlayWidth == 0 {
		return strings.Join(bgLines, "\n")
	}

	offsetX, offsetY := offsets(width, height, overlayWidth, overlayHeight, placement)
	for row := 0; row < overlayHeight; row++ {
		y := offsetY + row
		fg := pad(fgLines[row], overlayWidth)
		base := bgLines[y]
		prefix := ansi.Truncate(base, offsetX, "")
		suffix := ansi.TruncateLeft(base, offsetX+overlayWidth, "")
		bgLines[y] = prefix + "\x1b[0m" + fg + "\x1b[0m" + suffix
	}
	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offsets(width, height, overlayWidth, overlayHeight int, placement Placement) (int, int) {
	x := placement.MarginX
	switch placement.Horizontal {
	case lipgloss.Right:
		x = width - overlayWidth - placement.MarginX
	case lipgloss.Center:
		x = (width - overlayWidth) / 2
	}
	y := placement.MarginY
	switch placement.Vertical {
	case lipgloss.Bottom:
		y = height - overlayHeight - placement.MarginY
	case lipgloss.Center:
		y = (height - overlayHeight) / 2
	}
	return clamp(x, 0, width-overlayWidth), clamp(y, 0, height-overlayHeight)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
