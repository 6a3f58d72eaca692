package inventory

import "strings"

const (
	fieldSeparator = "\t"

	containerRequiredFields = 4
	imageRequiredFields     = 5
)

// ParseContainers parses a tab-delimited container listing with a header line.
// Lines with fewer than four fields are dropped; PORTS defaults to "".
func ParseContainers(output string) []Container {
	containers := []Container{}

	for _, fields := range dataRows(output) {
		if len(fields) < containerRequiredFields {
			continue
		}

		c := Container{
			ID:     fields[0],
			Name:   fields[1],
			Image:  fields[2],
			Status: fields[3],
		}
		if len(fields) > containerRequiredFields {
			c.Ports = fields[4]
		}
		containers = append(containers, c)
	}

	return containers
}

// ParseImages parses a tab-delimited image listing with a header line.
// Lines with fewer than five fields are dropped.
func ParseImages(output string) []Image {
	images := []Image{}

	for _, fields := range dataRows(output) {
		if len(fields) < imageRequiredFields {
			continue
		}

		images = append(images, Image{
			Repository: fields[0],
			Tag:        fields[1],
			ID:         fields[2],
			Created:    fields[3],
			Size:       fields[4],
		})
	}

	return images
}

// dataRows splits output into lines, drops the first non-empty line as the
// header, skips blank lines and splits the rest on tabs. An empty token after
// a trailing tab is not a field: "a\tb\tc\t" has three fields, while
// "a\tb\tc\t\t" has four with the last one empty.
func dataRows(output string) [][]string {
	var rows [][]string
	headerSeen := false

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		fields := strings.Split(line, fieldSeparator)
		if n := len(fields); n > 1 && fields[n-1] == "" {
			fields = fields[:n-1]
		}
		rows = append(rows, fields)
	}

	return rows
}
