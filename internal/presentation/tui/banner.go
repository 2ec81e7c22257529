package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	rows := []string{
		`      _  _  _ `,
		` ___ (_)| || |`,
		`/ __|| || || |`,
		`\__ \| || || |`,
		`|___/|_||_||_|`,
	}
	colors := []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6"}

	fmt.Println()
	for i, row := range rows {
		fmt.Println(termenv.String(row).Foreground(p.Color(colors[i])))
	}
	fmt.Println(termenv.String("  v" + version).Faint())
	fmt.Println()
}
