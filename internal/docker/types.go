package docker

import "time"

// Container represents a Docker container with the metadata shown in listings
type Container struct {
	ID     string
	Name   string
	Image  string
	State  string // running, exited, etc.
	Status string // human readable, e.g. "Up 3 minutes"
	Ports  []Port
}

// Port is a published or exposed container port
type Port struct {
	IP          string
	PrivatePort uint16
	PublicPort  uint16
	Type        string // tcp, udp, sctp
}

// Image represents a local image
type Image struct {
	ID       string
	RepoTags []string
	Created  time.Time
	Size     int64
}

// Version is the daemon's self-reported version
type Version struct {
	Version    string
	APIVersion string
	GitCommit  string
}

// FilterOptions contains options for filtering containers
type FilterOptions struct {
	IncludeAll bool // Include stopped containers
}
