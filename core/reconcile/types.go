package reconcile

import (
	"strings"
	"time"
)

// ScoreField names the numeric field candidates are ranked by.
type ScoreField string

const (
	// ScoreConfidence ranks vision detections.
	ScoreConfidence ScoreField = "confidence"
	// ScoreRelevance ranks shopping search results.
	ScoreRelevance ScoreField = "relevance"
)

// Candidate is a single record produced by a source adapter.
// Source specific payload (bounding boxes, prices, ratings) lives on the
// concrete type and is never touched by the reconciler.
type Candidate interface {
	// CandidateName returns the display name used for deduplication.
	CandidateName() string

	// Score returns the value of the requested score field.
	// Implementations return 0 for fields they do not carry.
	Score(field ScoreField) float64
}

// KeyFunc derives the deduplication key of a candidate.
type KeyFunc func(Candidate) string

// DefaultKey is the lowercase, trimmed candidate name.
func DefaultKey(c Candidate) string {
	return strings.ToLower(strings.TrimSpace(c.CandidateName()))
}

// ResultSet is the ordered output of one source.
type ResultSet[T Candidate] []T

// MergedSet is the reconciled output: deduplicated, ranked and truncated.
type MergedSet[T Candidate] []T

// Outcome is the uniform result of invoking one source adapter.
// Exactly one of Items or Err is meaningful: a failed outcome contributes
// nothing to the merged set.
type Outcome[T Candidate] struct {
	// Source is the adapter name (e.g. "openai", "amazon").
	Source string

	// Items are the candidates returned on success.
	Items ResultSet[T]

	// Err is the failure reason, nil on success.
	Err error

	// Elapsed is how long the adapter call took.
	Elapsed time.Duration
}

// Failed reports whether the adapter call failed.
func (o Outcome[T]) Failed() bool {
	return o.Err != nil
}

// Source statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// SourceStatus summarizes one outcome for API responses.
type SourceStatus struct {
	Source    string `json:"source"`
	Status    string `json:"status"`
	Count     int    `json:"count"`
	Error     string `json:"error,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}

// Result is the output of Reconcile.
type Result[T Candidate] struct {
	// Items is the merged, ranked candidate list.
	Items MergedSet[T]

	// Sources reports the status of each contributing adapter, in priority order.
	Sources []SourceStatus

	// AllFailed is true when no source was configured or every source failed.
	AllFailed bool
}
