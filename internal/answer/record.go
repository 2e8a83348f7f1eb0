// Package answer defines the enriched answer record and the derived-metric
// functions shared by the pipeline and analysis layers.
package answer

import "time"

// Record is one answer event after normalization and enrichment.
//
// ResponseTime is stored as the natural log of the raw millisecond value;
// the log transform happens once, at load time, so every downstream stage
// works in log-time units.
type Record struct {
	User          string
	PlaceAsked    string
	PlaceAnswered string // empty means no answer was given
	ResponseTime  float64
	Options       int
	Inserted      time.Time

	// Assigned by the enrichment pipeline.
	Session      int
	CountAll     int
	CountCorrect int
	CountWrong   int
}

// Correct reports whether the answered place matches the asked place.
// An unanswered record is never correct.
func (r Record) Correct() bool {
	return r.PlaceAnswered != "" && r.PlaceAnswered == r.PlaceAsked
}

// RandomFactor returns the guessing baseline 1/Options.
// Zero options (open answer) yields 0, not a division error.
func RandomFactor(r Record) float64 {
	if r.Options == 0 {
		return 0
	}
	return 1.0 / float64(r.Options)
}
