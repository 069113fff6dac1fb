package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pavanmanishd/vector/alloc"
)

type report struct {
	Strategy          string        `json:"strategy"`
	Workload          string        `json:"workload"`
	Elements          int           `json:"elements"`
	Len               int           `json:"len"`
	Cap               int           `json:"cap"`
	Growth            []int         `json:"growth"`
	Metrics           alloc.Metrics `json:"metrics"`
	Live              int           `json:"live"`
	LiveAfterRelease  int           `json:"live_after_release"`
	SlotsAfterRelease int           `json:"slots_after_release"`
	Elapsed           time.Duration `json:"elapsed_ns"`
}

type reportStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	box   lipgloss.Style
}

func newReportStyles(w io.Writer, color bool) reportStyles {
	r := lipgloss.NewRenderer(w)
	s := reportStyles{
		title: r.NewStyle().Bold(true),
		label: r.NewStyle().Width(20),
		value: r.NewStyle(),
		warn:  r.NewStyle(),
		box:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	if color {
		s.title = s.title.Foreground(lipgloss.Color("12"))
		s.label = s.label.Foreground(lipgloss.Color("8"))
		s.value = s.value.Bold(true)
		s.warn = s.warn.Foreground(lipgloss.Color("9")).Bold(true)
		s.box = s.box.BorderForeground(lipgloss.Color("8"))
	}
	return s
}

// renderReport writes r as a boxed table.
func renderReport(w io.Writer, r *report, color bool) {
	s := newReportStyles(w, color)

	row := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(fmt.Sprint(value)))
	}
	check := func(label string, n int) string {
		if n != 0 {
			return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.warn.Render(strconv.Itoa(n)))
		}
		return row(label, n)
	}

	m := r.Metrics
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render(fmt.Sprintf("%s / %s (%d elements)", r.Strategy, r.Workload, r.Elements)),
		"",
		row("len", r.Len),
		row("cap", r.Cap),
		row("growth", formatGrowth(r.Growth)),
		"",
		row("allocations", m.Allocations),
		row("deallocations", m.Deallocations),
		row("slots allocated", m.SlotsAllocated),
		row("constructs", m.Constructs),
		row("destroys", m.Destroys),
		row("moves", m.Moves),
		row("failures", m.Failures),
		row("live", r.Live),
		"",
		check("live after release", r.LiveAfterRelease),
		check("slots after release", r.SlotsAfterRelease),
		row("elapsed", r.Elapsed.Round(time.Microsecond)),
	)
	fmt.Fprintln(w, s.box.Render(body))
}

// formatGrowth shortens long capacity sequences to their first and last
// few steps.
func formatGrowth(caps []int) string {
	const keep = 4
	parts := make([]string, 0, len(caps))
	for _, c := range caps {
		parts = append(parts, strconv.Itoa(c))
	}
	if len(parts) > 2*keep+1 {
		parts = append(append(parts[:keep:keep], "…"), parts[len(parts)-keep:]...)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " → ")
}
