package domain

import "strings"

// ServiceState is the observed state of one compose service.
type ServiceState struct {
	Name   string
	State  string // running | exited | paused | ...
	Status string // human-readable, e.g. "Up 2 minutes"
	Ports  string
}

// Running reports whether the service is currently up.
func (s ServiceState) Running() bool {
	return strings.EqualFold(s.State, "running")
}

// Command describes one external tool invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
	Env  []string // extra KEY=VALUE pairs appended to the environment

	// Interactive attaches the invoking terminal's stdin/stdout/stderr
	// directly (needed for `shell` and other TTY-bound forwards).
	Interactive bool
}

// InstallSummary reports what the requirements installer did.
type InstallSummary struct {
	Dir        string
	MissingDir bool
	Manifests  []string
	Installed  int
}
