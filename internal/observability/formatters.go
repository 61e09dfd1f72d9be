// Package observability provides formatted output utilities for the pathfinder CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/remote-pathfinder/internal/llm"
	"github.com/jonathan/remote-pathfinder/internal/matching"
	"github.com/jonathan/remote-pathfinder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// lineWidth is the usable text width inside a box
	lineWidth = boxWidth - 4
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", lineWidth, truncate(title, lineWidth))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", lineWidth, truncate(line, lineWidth))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs the profile the matches were generated for.
func (p *Printer) PrintProfile(profile types.UserProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Current role:  %s\n", profile.CurrentRole))
	sb.WriteString(fmt.Sprintf("Skills:        %s\n", profile.Skills))
	sb.WriteString(fmt.Sprintf("Interests:     %s\n", profile.Interests))
	sb.WriteString(fmt.Sprintf("Income goal:   $%s USD/year", profile.IncomeGoal))

	p.printBox("YOUR PROFILE", sb.String())
}

// PrintJobMatches outputs one box per match with its score, salary,
// reasoning and a job-board search link.
func (p *Printer) PrintJobMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		return
	}

	for i, m := range matches {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Match:   %d%%  %s\n", m.Match, matchBar(m.Match)))
		sb.WriteString(fmt.Sprintf("Salary:  %s\n\n", m.Salary))
		for _, line := range wrap(m.Reasoning, lineWidth) {
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(matching.JobBoardURL(m.Title))

		p.printBox(fmt.Sprintf("#%d  %s", i+1, m.Title), sb.String())
	}
}

// PrintProbeResults outputs which candidate models answered a probe.
func (p *Printer) PrintProbeResults(results []llm.ProbeResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range results {
		if r.OK {
			sb.WriteString(fmt.Sprintf("✓ %-32s %s\n", r.Model, r.Latency.Round(time.Millisecond)))
			continue
		}
		sb.WriteString(fmt.Sprintf("✗ %-32s %s\n", r.Model, r.Error))
	}

	working := llm.WorkingModels(results)
	sb.WriteString(fmt.Sprintf("\n%d of %d models available", len(working), len(results)))

	p.printBox("MODEL AVAILABILITY", sb.String())
}

// matchBar renders a 0..100 score as a ten-cell bar.
func matchBar(score int) string {
	filled := min(max(score, 0), 100) / 10
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

// truncate shortens s to width runes, ending with "..." when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// wrap splits text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}
