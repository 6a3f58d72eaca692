package reporting

import (
	"fmt"
	"strings"

	"github.com/zorak1103/dockreport/internal/inventory"
)

// runningMarker is matched case-sensitively anywhere in the status text.
const runningMarker = "Up"

// Summary holds the aggregate counts of one snapshot.
type Summary struct {
	TotalContainers int
	Running         int
	Stopped         int
	TotalImages     int
	RuntimeVersion  string
}

// IsRunning reports whether a container status counts as running.
// "Exited (0) 2 hours ago (Up was never true)" counts as running too.
func IsRunning(status string) bool {
	return strings.Contains(status, runningMarker)
}

// Summarize counts containers by status and totals the images.
func Summarize(snap inventory.Snapshot) Summary {
	s := Summary{
		TotalContainers: len(snap.Containers),
		TotalImages:     len(snap.Images),
		RuntimeVersion:  snap.RuntimeVersion,
	}
	if s.RuntimeVersion == "" {
		s.RuntimeVersion = inventory.VersionUnknown
	}

	for _, c := range snap.Containers {
		if IsRunning(c.Status) {
			s.Running++
		} else {
			s.Stopped++
		}
	}

	return s
}

// RenderSummary formats a Summary for the console.
func RenderSummary(s Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total Containers: %d\n", s.TotalContainers))
	sb.WriteString(fmt.Sprintf("  - Running: %d\n", s.Running))
	sb.WriteString(fmt.Sprintf("  - Stopped: %d\n", s.Stopped))
	sb.WriteString(fmt.Sprintf("Total Images: %d\n", s.TotalImages))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Docker Version: %s\n", s.RuntimeVersion))

	return sb.String()
}
