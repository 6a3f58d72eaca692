// Package reporting renders collected inventory as console tables, a summary
// and a persisted plain-text report.
package reporting

import (
	"strings"

	"github.com/zorak1103/dockreport/internal/inventory"
)

// Column widths of the console tables. The last column of each table is
// printed as-is.
const (
	ContainerIDWidth     = 12
	ContainerNameWidth   = 20
	ContainerImageWidth  = 20
	ContainerStatusWidth = 15

	ImageRepositoryWidth = 25
	ImageTagWidth        = 15
	ImageIDWidth         = 12

	containerRuleWidth = 80
	imageRuleWidth     = 70
)

// Messages rendered in place of an empty table.
const (
	NoContainersMessage = "No containers found."
	NoImagesMessage     = "No images found."
)

// FormatCell truncates value to width-1 runes and left-aligns it in a cell of
// exactly width runes. A width below 1 yields an empty cell.
func FormatCell(value string, width int) string {
	if width < 1 {
		return ""
	}

	runes := []rune(value)
	if limit := width - 1; len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + strings.Repeat(" ", width-len(runes))
}

// ContainerTable renders containers as a fixed-width table.
func ContainerTable(containers []inventory.Container) string {
	if len(containers) == 0 {
		return NoContainersMessage + "\n"
	}

	var sb strings.Builder
	writeRow(&sb, []cell{
		{"ID", ContainerIDWidth},
		{"NAME", ContainerNameWidth},
		{"IMAGE", ContainerImageWidth},
		{"STATUS", ContainerStatusWidth},
	}, "PORTS")
	sb.WriteString(strings.Repeat("-", containerRuleWidth) + "\n")

	for _, c := range containers {
		writeRow(&sb, []cell{
			{c.ID, ContainerIDWidth},
			{c.Name, ContainerNameWidth},
			{c.Image, ContainerImageWidth},
			{c.Status, ContainerStatusWidth},
		}, c.Ports)
	}

	return sb.String()
}

// ImageTable renders images as a fixed-width table.
func ImageTable(images []inventory.Image) string {
	if len(images) == 0 {
		return NoImagesMessage + "\n"
	}

	var sb strings.Builder
	writeRow(&sb, []cell{
		{"REPOSITORY", ImageRepositoryWidth},
		{"TAG", ImageTagWidth},
		{"IMAGE ID", ImageIDWidth},
	}, "SIZE")
	sb.WriteString(strings.Repeat("-", imageRuleWidth) + "\n")

	for _, img := range images {
		writeRow(&sb, []cell{
			{img.Repository, ImageRepositoryWidth},
			{img.Tag, ImageTagWidth},
			{img.ID, ImageIDWidth},
		}, img.Size)
	}

	return sb.String()
}

type cell struct {
	value string
	width int
}

func writeRow(sb *strings.Builder, cells []cell, last string) {
	for _, c := range cells {
		sb.WriteString(FormatCell(c.value, c.width))
	}
	sb.WriteString(last)
	sb.WriteString("\n")
}
