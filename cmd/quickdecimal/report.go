package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/potswa/quickdecimal"
	"github.com/potswa/quickdecimal/internal/verify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(12)

	okStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func renderField(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func renderMismatches(b *strings.Builder, mismatches []verify.Mismatch, failed uint64) {
	for _, m := range mismatches {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(quickdecimal.FormatUint32(m.Value)))
		fmt.Fprintf(b, "  got %q, want %q (%v)\n", m.Got, m.Want, m.Reference)
	}
	if rest := failed - uint64(len(mismatches)); rest > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  ... and %v more", rest)))
		b.WriteString("\n")
	}
}

// renderReport formats the outcome of a range verification.
func renderReport(r verify.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("quickdecimal verify"))
	b.WriteString("\n\n")

	renderField(&b, "Range", "["+quickdecimal.FormatUint32(r.From)+", "+quickdecimal.FormatUint32(r.To)+"]")
	renderField(&b, "References", strings.Join(r.References, ", "))
	renderField(&b, "Checked", strconv.FormatUint(r.Checked, 10)+" of "+strconv.FormatUint(r.Total(), 10))
	renderField(&b, "Failed", strconv.FormatUint(r.Failed, 10))
	renderField(&b, "Elapsed", r.Elapsed.Round(time.Millisecond).String())
	if secs := r.Elapsed.Seconds(); secs > 0 {
		renderField(&b, "Rate", fmt.Sprintf("%.1fM values/s", float64(r.Checked)/secs/1e6))
	}

	var status string
	switch {
	case r.Failed > 0:
		status = errorStyle.Render("FAILED")
	case r.Checked < r.Total():
		status = errorStyle.Render("INCOMPLETE")
	default:
		status = okStyle.Render("OK")
	}
	renderField(&b, "Status", status)

	if len(r.Mismatches) > 0 {
		b.WriteString("\n")
		renderMismatches(&b, r.Mismatches, r.Failed)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderBoundaries formats the outcome of a boundary verification.
func renderBoundaries(checked int, refs []string, mismatches []verify.Mismatch) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("quickdecimal verify -boundaries"))
	b.WriteString("\n\n")

	renderField(&b, "References", strings.Join(refs, ", "))
	renderField(&b, "Checked", strconv.Itoa(checked))
	renderField(&b, "Failed", strconv.Itoa(len(mismatches)))
	if len(mismatches) > 0 {
		renderField(&b, "Status", errorStyle.Render("FAILED"))
		b.WriteString("\n")
		renderMismatches(&b, mismatches, uint64(len(mismatches)))
	} else {
		renderField(&b, "Status", okStyle.Render("OK"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderBench formats benchmark results as a table.
func renderBench(samples int, results []benchResult) string {
	var baseline float64
	for _, r := range results {
		if r.name == strconvBench {
			baseline = r.nsPerValue
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(helpStyle).
		Headers("Encoder", "ns/value", "Mvalues/s", "vs strconv").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range results {
		speedup := "-"
		if baseline > 0 && r.nsPerValue > 0 {
			speedup = fmt.Sprintf("%.2fx", baseline/r.nsPerValue)
		}
		t.Row(
			r.name,
			fmt.Sprintf("%.2f", r.nsPerValue),
			fmt.Sprintf("%.1f", 1e3/r.nsPerValue),
			speedup,
		)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("quickdecimal bench"))
	b.WriteString("\n\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%v sampled values per iteration", samples)))
	return b.String()
}
