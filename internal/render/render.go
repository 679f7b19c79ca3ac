// Package render draws cube states for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/permcube/internal/cube"
)

// Sticker colors, matching standard cube plastics.
var colorStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")),
	cube.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#009B48")),
	cube.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B71234")),
	cube.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD500")),
	cube.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#0046AD")),
	cube.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5800")),
}

// Sticker returns the letter for a color, styled when colored is set.
func Sticker(c cube.Color, colored bool) string {
	if !colored {
		return c.String()
	}
	style, ok := colorStyles[c]
	if !ok {
		return c.String()
	}
	return style.Render(c.String())
}

// Face renders one face as three rows of three stickers.
func Face(s cube.State, f cube.Face, colored bool) []string {
	colors := s.FaceColors(f)
	rows := make([]string, 3)
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(Sticker(colors[row*3+col], colored))
		}
		rows[row] = b.String()
	}
	return rows
}

// Net renders the cube unfolded with U above the L F R B band and D below:
//
//	    UUU
//	    UUU
//	    UUU
//	LLL FFF RRR BBB
//	...
func Net(s cube.State, colored bool) string {
	var b strings.Builder

	up := Face(s, cube.U, colored)
	for _, row := range up {
		b.WriteString("    ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	band := [][]string{
		Face(s, cube.L, colored),
		Face(s, cube.F, colored),
		Face(s, cube.R, colored),
		Face(s, cube.B, colored),
	}
	for row := 0; row < 3; row++ {
		parts := make([]string, len(band))
		for i, face := range band {
			parts[i] = face[row]
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	down := Face(s, cube.D, colored)
	for _, row := range down {
		b.WriteString("    ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}
