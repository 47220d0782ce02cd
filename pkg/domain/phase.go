package domain

import "time"

// PhaseCount is the fixed number of phases in the workflow.
const PhaseCount = 5

// ProgressDetector decides whether a phase folder contains evidence of prior work.
// Implementations must be pure: no writes, no panics, deterministic for a fixed tree.
type ProgressDetector interface {
	Detect(folder string) bool
}

// DetectorFunc adapts an ordinary function to ProgressDetector.
type DetectorFunc func(folder string) bool

// Detect calls f(folder).
func (f DetectorFunc) Detect(folder string) bool {
	return f(folder)
}

// PhaseDescriptor describes one registered phase. It is built once and never mutated.
type PhaseDescriptor struct {
	Index     int
	Title     string
	Folder    string
	GuidePath string
	Detector  ProgressDetector
}

// HasProgress applies the phase detector to its folder.
// A descriptor without a detector never reports progress.
func (p PhaseDescriptor) HasProgress() bool {
	if p.Detector == nil {
		return false
	}
	return p.Detector.Detect(p.Folder)
}

// ProgressSummary is the derived, never persisted view of a phase.
type ProgressSummary struct {
	Index        int    `json:"index"`
	Title        string `json:"title"`
	GuideHeading string `json:"guide_heading"`
	HasProgress  bool   `json:"has_progress"`
}

// Status returns the tag used when listing progress.
func (s ProgressSummary) Status() string {
	if s.HasProgress {
		return "progress found"
	}
	return "no progress"
}

// CompletionRecord is handed to a progress recorder after a phase completes.
type CompletionRecord struct {
	PhaseIndex  int       `json:"phase_index"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}

// CompletionTimeLayout is the timestamp layout used in human-readable records.
const CompletionTimeLayout = "2006-01-02 15:04:05"

// String renders the record the way the progress log stores it.
func (r CompletionRecord) String() string {
	return r.Title + " completed on " + r.CompletedAt.Format(CompletionTimeLayout)
}
