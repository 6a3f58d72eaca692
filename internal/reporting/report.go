package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/zorak1103/dockreport/internal/errors"
	"github.com/zorak1103/dockreport/internal/inventory"
)

// DefaultReportFile is written in the working directory unless configured otherwise.
const DefaultReportFile = "docker_report.txt"

// GeneratedAtLayout formats the "Generated on" header of the file report.
const GeneratedAtLayout = "2006-01-02 15:04:05 MST"

const reportRule = "================================================="

// FileReport renders the full, untruncated report persisted to disk.
func FileReport(snap inventory.Snapshot, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("Docker System Report\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n", generatedAt.Format(GeneratedAtLayout)))
	sb.WriteString(reportRule + "\n\n")

	sb.WriteString(fmt.Sprintf("CONTAINERS (%d total):\n", len(snap.Containers)))
	for _, c := range snap.Containers {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", c.Name, c.ID))
		sb.WriteString(fmt.Sprintf("  Image: %s\n", c.Image))
		sb.WriteString(fmt.Sprintf("  Status: %s\n", c.Status))
		if c.Ports != "" {
			sb.WriteString(fmt.Sprintf("  Ports: %s\n", c.Ports))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("IMAGES (%d total):\n", len(snap.Images)))
	for _, img := range snap.Images {
		sb.WriteString(fmt.Sprintf("- %s\n", img.Reference()))
		sb.WriteString(fmt.Sprintf("  ID: %s\n", img.ID))
		sb.WriteString(fmt.Sprintf("  Size: %s\n", img.Size))
		sb.WriteString(fmt.Sprintf("  Created: %s\n", img.Created))
		sb.WriteString("\n")
	}

	return sb.String()
}

// SaveReport writes content to path, replacing any previous report.
// Missing parent directories are created.
func SaveReport(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return &apperrors.ReportWriteError{Path: path, Err: fmt.Errorf("failed to create report directory: %w", err)}
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return &apperrors.ReportWriteError{Path: path, Err: err}
	}

	return nil
}
