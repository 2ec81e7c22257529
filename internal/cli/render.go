package cli

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/sill/pkg/schema"
)

// RenderReport formats a classification for humans. Problems come first,
// then the fields that passed, then a one-line summary.
func RenderReport(rep *schema.Report, colored bool) string {
	width := 0
	for _, name := range rep.Missing {
		width = max(width, len(name))
	}
	for _, fe := range rep.Invalid {
		width = max(width, len(fe.Field))
	}
	for _, name := range rep.Valid {
		width = max(width, len(name))
	}

	var b strings.Builder
	for _, name := range rep.Missing {
		b.WriteString(reportLine("✗", name, schema.ReasonMissing, width, colored))
	}
	for _, fe := range rep.Invalid {
		b.WriteString(reportLine("✗", fe.Field, fe.Reason, width, colored))
	}
	for _, name := range rep.Valid {
		b.WriteString(reportLine("✓", name, "", width, colored))
	}

	problems := len(rep.Missing) + len(rep.Invalid)
	b.WriteString("\n")
	if problems == 0 {
		b.WriteString(paint(fmt.Sprintf("Environment is valid! ✅ (%d checked)", len(rep.Valid)), ansiGreen, colored))
	} else {
		b.WriteString(paint(fmt.Sprintf("%s: %d problem(s) found.", schema.SummaryMessage, problems), ansiRed, colored))
	}
	b.WriteString("\n")
	return b.String()
}

const (
	ansiRed   = "1"
	ansiGreen = "2"
)

func reportLine(marker, name, reason string, width int, colored bool) string {
	color := ansiGreen
	if reason != "" {
		color = ansiRed
	}
	line := fmt.Sprintf("  %s %-*s", marker, width, name)
	if reason != "" {
		line += "  " + reason
	}
	return paint(strings.TrimRight(line, " "), color, colored) + "\n"
}

func paint(s, ansiColor string, colored bool) string {
	if !colored {
		return s
	}
	p := termenv.ColorProfile()
	return termenv.String(s).Foreground(p.Color(ansiColor)).String()
}
