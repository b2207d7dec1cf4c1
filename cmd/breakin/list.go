package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/break-in/internal/games/breakin"
	"github.com/vovakirdan/break-in/internal/games/breakin/shape"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List drops, special bricks and shapes",
	Long:  `Shows the pickups, the special brick kinds and the shape catalog.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	fmt.Println("Drops:")
	fmt.Println()
	fmt.Printf("  %-6s  %-16s  %-4s  %s\n", "Glyph", "Name", "Side", "Duration")
	fmt.Printf("  %-6s  %-16s  %-4s  %s\n", "-----", "----", "----", "--------")
	for _, d := range breakin.AllDrops() {
		side := "bad"
		if d.Good() {
			side = "good"
		}
		duration := "instant"
		if d.Duration() > 0 {
			duration = fmt.Sprintf("%.0fs", d.Duration())
		}
		fmt.Printf("  %-6c  %-16s  %-4s  %s\n", d.Glyph(), d, side, duration)
	}

	fmt.Println()
	fmt.Println("Special bricks:")
	fmt.Println()
	for _, k := range breakin.SpecialKinds() {
		fmt.Printf("  %c  %s\n", breakin.KindGlyph(k), k)
	}

	fmt.Println()
	fmt.Println("Shapes:")
	fmt.Println()
	for _, s := range shape.Catalog() {
		for _, line := range shapeLines(s) {
			fmt.Printf("  %s\n", line)
		}
		fmt.Println()
	}
}

// shapeLines draws a shape with two characters per cell.
func shapeLines(s shape.Shape) []string {
	rows := make([][]byte, s.Dim.H)
	for y := range rows {
		rows[y] = []byte(strings.Repeat("  ", s.Dim.W))
	}
	s.Each(func(x, y int, _ bool) {
		if y < len(rows) && 2*x+1 < len(rows[y]) {
			rows[y][2*x], rows[y][2*x+1] = '[', ']'
		}
	})

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.TrimRight(string(r), " ")
	}
	return lines
}
