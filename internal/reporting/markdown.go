package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Recording Summary\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Recording metadata
	sb.WriteString("## Recording\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Recording ID | %s |\n", r.RecordingID))
	sb.WriteString(fmt.Sprintf("| Wearer | %s |\n", r.Wearer))
	sb.WriteString(fmt.Sprintf("| Device | %s |\n", r.Device))
	sb.WriteString(fmt.Sprintf("| Start (ns) | %d |\n", r.StartTs))
	sb.WriteString("\n")

	// Streams
	sb.WriteString("## Streams\n\n")
	if len(r.Streams) > 0 {
		sb.WriteString("| Stream | Samples | First (ns) | Last (ns) | Duration (s) | Nominal (Hz) | Effective (Hz) |\n")
		sb.WriteString("|--------|---------|------------|-----------|--------------|--------------|----------------|\n")
		for _, s := range r.Streams {
			nominal := "-"
			if s.NominalRate > 0 {
				nominal = fmt.Sprintf("%.0f", s.NominalRate)
			}
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %.3f | %s | %.3f |\n",
				s.Kind, s.SampleCount, s.FirstTs, s.LastTs, s.Duration, nominal, s.EffectiveRate))
		}
	} else {
		sb.WriteString("No stream data available.\n")
	}
	sb.WriteString("\n")

	// Events
	sb.WriteString("## Events\n\n")
	sb.WriteString("| Event | Count |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Fixations | %d |\n", r.Events.Fixations))
	sb.WriteString(fmt.Sprintf("| Saccades | %d |\n", r.Events.Saccades))
	sb.WriteString(fmt.Sprintf("| Blinks | %d |\n", r.Events.Blinks))
	sb.WriteString(fmt.Sprintf("| Markers | %d |\n", r.Events.Markers))
	sb.WriteString("\n")

	if r.Events.Fixations > 0 || r.Events.Blinks > 0 {
		sb.WriteString(fmt.Sprintf("Mean fixation duration: %.1f ms | Mean blink duration: %.1f ms\n",
			r.Events.MeanFixationMs, r.Events.MeanBlinkMs))
	}

	return sb.String()
}
