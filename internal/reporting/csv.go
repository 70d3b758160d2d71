package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders the per-stream summary rows as CSV string.
func RenderCSV(streams []StreamSummaryRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("kind,sample_count,first_ts,last_ts,duration_s,nominal_rate_hz,effective_rate_hz\n")

	// Rows
	for _, s := range streams {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%d,%.6f,%.1f,%.6f\n",
			s.Kind,
			s.SampleCount,
			s.FirstTs,
			s.LastTs,
			s.Duration,
			s.NominalRate,
			s.EffectiveRate,
		))
	}

	return sb.String()
}
