package enrich

import (
	"sort"

	"github.com/abhisek/geoquiz/internal/answer"
)

// streakState carries the running counters for one (user, place) key.
type streakState struct {
	user    string
	place   string
	all     int
	correct int
	wrong   int
}

// reset starts a fresh counter run for a new key.
func (s *streakState) reset(user, place string) {
	*s = streakState{user: user, place: place}
}

// matches reports whether the record continues the current key.
func (s *streakState) matches(r answer.Record) bool {
	return s.user == r.User && s.place == r.PlaceAsked
}

// Streaks annotates every record with the number of strictly prior
// attempts, correct answers, and wrong answers for the same
// (user, place asked) pair. Records are stable-sorted by
// (user, place asked, inserted); counters are emitted before being updated
// with the current record, so they never include it. The input slice is
// not modified.
func Streaks(records []answer.Record) []answer.Record {
	out := make([]answer.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].User != out[j].User {
			return out[i].User < out[j].User
		}
		if out[i].PlaceAsked != out[j].PlaceAsked {
			return out[i].PlaceAsked < out[j].PlaceAsked
		}
		return out[i].Inserted.Before(out[j].Inserted)
	})

	var state streakState
	started := false
	for i := range out {
		r := &out[i]
		if !started || !state.matches(*r) {
			state.reset(r.User, r.PlaceAsked)
			started = true
		}

		r.CountAll = state.all
		r.CountCorrect = state.correct
		r.CountWrong = state.wrong

		state.all++
		if r.Correct() {
			state.correct++
		} else {
			state.wrong++
		}
	}
	return out
}
