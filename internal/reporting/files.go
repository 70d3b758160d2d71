package reporting

import (
	"fmt"
	"os"
	"path/filepath"
)

// Output file names.
const (
	SummaryFileName = "RECORDING_SUMMARY.md"
	StreamsFileName = "stream_summary.csv"
)

// WriteFiles renders the report and writes the markdown and CSV outputs
// into outputDir, creating it if needed.
func WriteFiles(outputDir string, r *Report) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(mdPath, []byte(RenderMarkdown(r)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", SummaryFileName, err)
	}

	csvPath := filepath.Join(outputDir, StreamsFileName)
	if err := os.WriteFile(csvPath, []byte(RenderCSV(r.Streams)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", StreamsFileName, err)
	}

	return nil
}
