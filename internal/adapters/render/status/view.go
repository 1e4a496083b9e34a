package status

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/airella-bridge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	stationColumnWidth = 12
	statusColumnWidth  = 17
)

type RenderOptions struct {
	Now time.Time
	// Interval is the polling interval; heartbeats older than it are drawn
	// faded.
	Interval time.Duration
}

func renderView(report domain.CycleReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Airella Bridge Cycle"),
		s.header.Render(summaryLine(report)),
	}

	if report.Aborted() {
		lines = append(lines, s.warning.Render("cycle aborted: "+report.AbortErr.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(report.Outcomes) == 0 {
		lines = append(lines, s.empty.Render("No stations processed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		rows = append(rows, renderOutcome(outcome, opts, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(report domain.CycleReport) string {
	parts := []string{
		fmt.Sprintf("stations: %d", len(report.Outcomes)),
		fmt.Sprintf("delivered: %d", report.Count(domain.OutcomeDelivered)),
		fmt.Sprintf("rejected: %d", report.Count(domain.OutcomeRejected)),
		fmt.Sprintf("errors: %d", report.Errors()),
	}
	if d := report.Duration(); d > 0 {
		parts = append(parts, "took "+d.Round(time.Millisecond).String())
	}
	if report.ID != "" {
		parts = append(parts, "cycle "+report.ID)
	}
	return strings.Join(parts, "  ")
}

func renderOutcome(outcome domain.StationOutcome, opts RenderOptions, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.station.Render(string(outcome.Station)),
		statusStyle(outcome.Status, s).Render(statusLabel(outcome.Status)),
		outcomeDetail(outcome, opts, s),
	)
}

func statusStyle(status domain.OutcomeStatus, s styles) lipgloss.Style {
	switch status {
	case domain.OutcomeDelivered:
		return s.delivered
	case domain.OutcomeRejected:
		return s.rejected
	default:
		return s.failed
	}
}

func statusLabel(status domain.OutcomeStatus) string {
	switch status {
	case domain.OutcomeDelivered:
		return "delivered"
	case domain.OutcomeRejected:
		return "skipped"
	case domain.OutcomeFetchFailed:
		return "fetch failed"
	case domain.OutcomeDeliveryFailed:
		return "delivery failed"
	default:
		return string(status)
	}
}

func outcomeDetail(outcome domain.StationOutcome, opts RenderOptions, s styles) string {
	var rejected *domain.RejectedError
	switch {
	case errors.As(outcome.Err, &rejected):
		return s.detail.Render(rejectionDetail(rejected))
	case outcome.Err != nil:
		return s.detail.Render(outcome.Err.Error())
	case !outcome.Heartbeat.IsZero():
		style := lipgloss.NewStyle().Foreground(heartbeatColor(outcome.Heartbeat, opts))
		return style.Render("heartbeat " + formatHeartbeat(outcome.Heartbeat, opts.Now))
	default:
		return ""
	}
}

func rejectionDetail(rejected *domain.RejectedError) string {
	if rejected.Field != "" {
		return fmt.Sprintf("%s: %s", rejected.Reason, rejected.Field)
	}
	return string(rejected.Reason)
}

func formatHeartbeat(heartbeat, now time.Time) string {
	local := heartbeat.Local()
	if now.IsZero() {
		return local.Format(time.RFC3339)
	}

	age := now.Sub(heartbeat)
	if age < time.Minute {
		return fmt.Sprintf("%s (just now)", local.Format("15:04:05"))
	}
	if age < 24*time.Hour {
		minutes := int(math.Floor(age.Minutes()))
		if minutes < 60 {
			return fmt.Sprintf("%s (%d min ago)", local.Format("15:04:05"), minutes)
		}
		return fmt.Sprintf("%s (%dh%02dm ago)", local.Format("15:04:05"), minutes/60, minutes%60)
	}

	return local.Format("15:04 on 02 Jan")
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp: 240 faded, 255 bright.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// heartbeatColor fades from bright for a fresh heartbeat to grey once it is
// one interval old.
func heartbeatColor(heartbeat time.Time, opts RenderOptions) lipgloss.Color {
	if opts.Now.IsZero() || opts.Interval <= 0 || heartbeat.After(opts.Now) {
		return lipgloss.Color("255")
	}

	age := opts.Now.Sub(heartbeat)
	return interpolateColor(opts.Interval.Seconds()-age.Seconds(), 0, opts.Interval.Seconds())
}
