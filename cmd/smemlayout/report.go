package main

import (
	"io"

	"github.com/QuangTung97/smemlayout"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type chunkReport struct {
	Name       string `json:"name"`
	Offset     int    `json:"offset"`
	End        int    `json:"end"`
	Size       int    `json:"size"`
	PaddedSize int    `json:"paddedSize"`
	Alignment  int    `json:"alignment"`
	Policy     string `json:"policy"`
}

type poolReport struct {
	Name      string        `json:"name"`
	TotalSize int           `json:"totalSize"`
	Chunks    []chunkReport `json:"chunks"`
}

func buildReport(planner *smemlayout.Planner) []poolReport {
	pools := planner.Pools()
	result := make([]poolReport, 0, len(pools))

	for _, pool := range pools {
		plan := pool.Plan()
		report := poolReport{
			Name:      pool.Name(),
			TotalSize: pool.TotalSize(),
			Chunks:    make([]chunkReport, 0, plan.Len()),
		}
		names := pool.Names()
		for i, c := range plan.Chunks() {
			offset := plan.MustOffset(i)
			report.Chunks = append(report.Chunks, chunkReport{
				Name:       names[i],
				Offset:     offset,
				End:        offset + c.PaddedSize(),
				Size:       c.Size,
				PaddedSize: c.PaddedSize(),
				Alignment:  c.Alignment,
				Policy:     c.Policy.String(),
			})
		}
		result = append(result, report)
	}
	return result
}

type reportStyles struct {
	pool  lipgloss.Style
	alias lipgloss.Style
	total lipgloss.Style
}

func newReportStyles(color bool) reportStyles {
	if !color {
		return reportStyles{
			pool:  lipgloss.NewStyle(),
			alias: lipgloss.NewStyle(),
			total: lipgloss.NewStyle(),
		}
	}
	return reportStyles{
		pool: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB")),
		alias: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C")),
		total: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90")),
	}
}

func renderText(w io.Writer, reports []poolReport, color bool) {
	styles := newReportStyles(color)
	p := message.NewPrinter(language.English)

	for i, pool := range reports {
		if i > 0 {
			p.Fprintf(w, "\n")
		}
		p.Fprintf(w, "%s\n", styles.pool.Render("Pool "+pool.Name))
		p.Fprintf(w, "  %-12s %12s %12s %12s %6s  %s\n", "CHUNK", "OFFSET", "END", "SIZE", "ALIGN", "POLICY")
		for _, c := range pool.Chunks {
			policy := c.Policy
			if c.Policy != "append" {
				policy = styles.alias.Render(policy)
			}
			p.Fprintf(w, "  %-12s %12d %12d %12d %6d  %s\n",
				c.Name, c.Offset, c.End, c.Size, c.Alignment, policy)
		}
		p.Fprintf(w, "  %s\n", styles.total.Render(p.Sprintf("Total: %d", pool.TotalSize)))
	}
}
