package enrich

import (
	"time"

	"github.com/abhisek/geoquiz/internal/answer"
)

// Options configures the enrichment pipeline.
type Options struct {
	// SessionGap is the inactivity threshold splitting sessions.
	// Zero means DefaultSessionGap.
	SessionGap time.Duration
}

// Enrich runs the full pipeline over normalized records: session
// segmentation followed by streak annotation. The result is a fresh,
// fully materialized slice ordered by (user, place asked, inserted);
// the input is never modified. The pipeline is deterministic: the same
// input always yields an identical result.
func Enrich(records []answer.Record, opts Options) []answer.Record {
	gap := opts.SessionGap
	if gap == 0 {
		gap = DefaultSessionGap
	}
	return Streaks(Sessions(records, gap))
}
