// Package dataset wraps the enriched answer log and provides the read-only
// query views consumed by analysis and rendering collaborators.
package dataset

import (
	"fmt"
	"sort"

	"github.com/abhisek/geoquiz/internal/answer"
	"github.com/abhisek/geoquiz/internal/stats"
)

// ConfigurationError reports an inconsistent analysis request, detected
// before any computation runs.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Dataset is a read-only view over enriched answer records.
type Dataset struct {
	records []answer.Record
}

// New wraps records in a Dataset. The slice is copied so later mutation of
// the argument cannot leak into views.
func New(records []answer.Record) Dataset {
	out := make([]answer.Record, len(records))
	copy(out, records)
	return Dataset{records: out}
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns the underlying records. Callers must not modify them.
func (d Dataset) Records() []answer.Record { return d.records }

// Correct returns the view of correctly answered records.
func (d Dataset) Correct() Dataset {
	return d.filter(func(r answer.Record) bool { return r.Correct() })
}

// Wrong returns the view of wrong or unanswered records.
func (d Dataset) Wrong() Dataset {
	return d.filter(func(r answer.Record) bool { return !r.Correct() })
}

func (d Dataset) filter(keep func(answer.Record) bool) Dataset {
	var out []answer.Record
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return Dataset{records: out}
}

// ResponseTimes returns the response-time column.
func (d Dataset) ResponseTimes() []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = r.ResponseTime
	}
	return out
}

// SuccessByPlace returns, for each asked place, the fraction of answers
// that were correct.
func (d Dataset) SuccessByPlace() map[string]float64 {
	total := make(map[string]int)
	correct := make(map[string]int)
	for _, r := range d.records {
		total[r.PlaceAsked]++
		if r.Correct() {
			correct[r.PlaceAsked]++
		}
	}
	out := make(map[string]float64, len(total))
	for place, n := range total {
		out[place] = float64(correct[place]) / float64(n)
	}
	return out
}

// NormalizeBy returns a new dataset with response times z-scored within
// each group produced by key. Groups with fewer than two records get NaN
// response times; callers decide how to treat them.
func (d Dataset) NormalizeBy(key func(answer.Record) string) Dataset {
	values := make(map[string][]float64)
	for _, r := range d.records {
		k := key(r)
		values[k] = append(values[k], r.ResponseTime)
	}

	type groupStats struct{ mean, std float64 }
	byKey := make(map[string]groupStats, len(values))
	for k, vs := range values {
		byKey[k] = groupStats{mean: stats.Mean(vs), std: stats.Std(vs)}
	}

	out := make([]answer.Record, len(d.records))
	copy(out, d.records)
	for i := range out {
		gs := byKey[key(out[i])]
		out[i].ResponseTime = (out[i].ResponseTime - gs.mean) / gs.std
	}
	return Dataset{records: out}
}

// PatternTimes finds, independently for every (user, place asked) pair, all
// windows of len(pattern) consecutive answers in time order whose
// correctness matches the pattern exactly. It returns one bucket per
// pattern position holding the matching records at that offset across all
// windows. A pair with fewer answers than the pattern length produces no
// match.
func (d Dataset) PatternTimes(pattern []bool) ([][]answer.Record, error) {
	if len(pattern) == 0 {
		return nil, &ConfigurationError{Reason: "empty pattern"}
	}

	type pairKey struct{ user, place string }
	groups := make(map[pairKey][]answer.Record)
	var order []pairKey
	for _, r := range d.records {
		k := pairKey{user: r.User, place: r.PlaceAsked}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].user != order[j].user {
			return order[i].user < order[j].user
		}
		return order[i].place < order[j].place
	})

	result := make([][]answer.Record, len(pattern))
	for _, k := range order {
		run := groups[k]
		sort.SliceStable(run, func(i, j int) bool {
			return run[i].Inserted.Before(run[j].Inserted)
		})
		for start := 0; start+len(pattern) <= len(run); start++ {
			window := run[start : start+len(pattern)]
			if windowMatches(window, pattern) {
				for i, r := range window {
					result[i] = append(result[i], r)
				}
			}
		}
	}
	return result, nil
}

func windowMatches(window []answer.Record, pattern []bool) bool {
	for i, want := range pattern {
		if window[i].Correct() != want {
			return false
		}
	}
	return true
}

// ParsePattern converts a compact pattern spec like "TTF" or "110" into
// the boolean correctness pattern used by PatternTimes.
func ParsePattern(spec string) ([]bool, error) {
	if spec == "" {
		return nil, &ConfigurationError{Reason: "empty pattern"}
	}
	out := make([]bool, 0, len(spec))
	for _, c := range spec {
		switch c {
		case 'T', 't', '1':
			out = append(out, true)
		case 'F', 'f', '0':
			out = append(out, false)
		default:
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("pattern char %q (want T/F or 1/0)", c),
			}
		}
	}
	return out, nil
}
