package reconcile

import (
	"context"
	"errors"
	"math"
	"sort"

	"go.uber.org/zap"
)

// Spec configures a reconciliation.
type Spec struct {
	// Score is the field candidates are ranked by.
	Score ScoreField

	// Key derives the deduplication key. Nil means DefaultKey.
	Key KeyFunc

	// MaxResults caps the merged set. Zero or negative yields an empty set.
	MaxResults int

	// MinScore, when set, drops deduplicated candidates scoring below it
	// before truncation.
	MinScore *float64

	// Logger receives one entry per failed source. Nil disables logging.
	Logger *zap.Logger
}

// Merge combines result sets into one ranked list.
//
// Sets are concatenated in priority order; when two candidates share a key
// the first one seen is kept, regardless of score. The survivors are sorted
// by the score field descending, stable on ties, and cut to maxResults.
// Candidates with a NaN score are dropped.
// Merge never fails and never modifies the candidates it is given.
func Merge[T Candidate](sets []ResultSet[T], field ScoreField, key KeyFunc, maxResults int) MergedSet[T] {
	return mergeSets(Spec{Score: field, Key: key, MaxResults: maxResults}, sets)
}

// Reconcile merges the outcomes of several adapters.
// Failed outcomes are logged and treated as empty result sets.
func Reconcile[T Candidate](spec Spec, outcomes []Outcome[T]) Result[T] {
	sets := make([]ResultSet[T], 0, len(outcomes))
	statuses := make([]SourceStatus, 0, len(outcomes))
	failed := 0

	for _, o := range outcomes {
		st := SourceStatus{
			Source:    o.Source,
			Status:    StatusOK,
			Count:     len(o.Items),
			ElapsedMs: o.Elapsed.Milliseconds(),
		}
		if o.Failed() {
			failed++
			st.Status = StatusError
			if errors.Is(o.Err, context.DeadlineExceeded) {
				st.Status = StatusTimeout
			}
			st.Count = 0
			st.Error = o.Err.Error()
			if spec.Logger != nil {
				spec.Logger.Warn("Source failed, skipping its results",
					zap.String("source", o.Source),
					zap.Duration("elapsed", o.Elapsed),
					zap.Error(o.Err))
			}
		} else {
			sets = append(sets, o.Items)
		}
		statuses = append(statuses, st)
	}

	return Result[T]{
		Items:     mergeSets(spec, sets),
		Sources:   statuses,
		AllFailed: failed == len(outcomes),
	}
}

func mergeSets[T Candidate](spec Spec, sets []ResultSet[T]) MergedSet[T] {
	if spec.MaxResults <= 0 {
		return MergedSet[T]{}
	}

	key := spec.Key
	if key == nil {
		key = DefaultKey
	}

	// Dedupe over the concatenation, first seen wins
	seen := make(map[string]struct{})
	merged := make(MergedSet[T], 0)
	for _, set := range sets {
		for _, c := range set {
			k := key(c)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			score := c.Score(spec.Score)
			if math.IsNaN(score) {
				continue
			}
			if spec.MinScore != nil && score < *spec.MinScore {
				continue
			}
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score(spec.Score) > merged[j].Score(spec.Score)
	})

	if len(merged) > spec.MaxResults {
		merged = merged[:spec.MaxResults]
	}
	return merged
}
