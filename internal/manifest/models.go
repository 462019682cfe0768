package manifest

import "time"

// Kind distinguishes the two cache entry families.
type Kind string

const (
	KindApplication Kind = "application"
	KindApplet      Kind = "applet"
)

// RunStatus is the lifecycle state of a recorded run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// Run is one pipeline invocation.
type Run struct {
	ID         string    `json:"id"`
	Pipeline   string    `json:"pipeline"`
	Status     RunStatus `json:"status"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}

// Entry describes the last write of one cache file. Path is relative to the
// cache root and is the entry's identity.
type Entry struct {
	Path      string    `json:"path"`
	Kind      Kind      `json:"kind"`
	Target    string    `json:"target"`
	Language  string    `json:"language"`
	Bytes     int64     `json:"bytes"`
	SHA256    string    `json:"sha256"`
	RunID     string    `json:"run_id"`
	WrittenAt time.Time `json:"written_at"`
}
