// Package inventory turns container runtime listings into typed records.
package inventory

// Container is one row of the container listing.
type Container struct {
	ID     string
	Name   string
	Image  string // repository[:tag]
	Status string // free text, e.g. "Up 3 minutes"
	Ports  string // empty when the container publishes nothing
}

// Image is one row of the image listing.
type Image struct {
	Repository string
	Tag        string
	ID         string
	Created    string // as reported by the runtime, not parsed
	Size       string // human readable, not parsed
}

// Reference returns "repository:tag".
func (i Image) Reference() string {
	return i.Repository + ":" + i.Tag
}

// Snapshot holds everything collected for one report run.
type Snapshot struct {
	Containers     []Container
	Images         []Image
	RuntimeVersion string
}
