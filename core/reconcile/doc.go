// Package reconcile merges candidate lists produced by independent sources
// into a single ranked list.
//
// Every source adapter (vision APIs, shopping platforms) returns an ordered
// result set. The reconciler concatenates those sets in source priority
// order, removes duplicates by key, ranks the survivors by a score field and
// truncates to the requested size.
//
// # Components
//
//   - Merge: the pure merge operation. Never fails, never mutates its inputs.
//   - Gather: runs adapter calls concurrently, each with its own timeout, and
//     turns every call into an Outcome (success with data, or failure with reason).
//   - Reconcile: consumes Outcomes, logs and drops failures, and merges the rest.
//     This is the only place adapter failures are handled.
//
// # Ordering Rules
//
//   - First source wins on duplicate keys, even if a later source scores higher.
//   - Sorting is stable: equal scores keep concatenation order.
//   - Missing scores read as 0; negative scores are kept and sort last.
//
// # Usage Example
//
//	outcomes := reconcile.Gather(ctx, 10*time.Second, []reconcile.Task[source.Detection]{
//	    {Source: "openai", Fetch: func(ctx context.Context) ([]source.Detection, error) {
//	        return openaiDetector.Detect(ctx, img)
//	    }},
//	})
//	res := reconcile.Reconcile(reconcile.Spec{
//	    Score:      reconcile.ScoreConfidence,
//	    MaxResults: 5,
//	    Logger:     log,
//	}, outcomes)
package reconcile
