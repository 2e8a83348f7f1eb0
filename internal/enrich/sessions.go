// Package enrich derives per-answer structure (sessions, per-place streak
// counters) from a flat log of normalized answer records.
package enrich

import (
	"sort"
	"time"

	"github.com/abhisek/geoquiz/internal/answer"
)

// DefaultSessionGap is the inactivity threshold that splits a user's
// answers into sessions.
const DefaultSessionGap = 30 * time.Minute

// Sessions assigns a session id to every record. Records are stable-sorted
// by (user, inserted); a new session starts on the first record, on a user
// change, or when the gap to the previous record strictly exceeds gap.
// Ids come from one global counter starting at 1, so they are unique only
// together with the user. The input slice is not modified.
func Sessions(records []answer.Record, gap time.Duration) []answer.Record {
	out := make([]answer.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].User != out[j].User {
			return out[i].User < out[j].User
		}
		return out[i].Inserted.Before(out[j].Inserted)
	})

	type carried struct {
		user string
		time time.Time
	}
	var prev *carried
	session := 0
	for i := range out {
		r := &out[i]
		if prev == nil || prev.user != r.User || r.Inserted.Sub(prev.time) > gap {
			session++
		}
		r.Session = session
		prev = &carried{user: r.User, time: r.Inserted}
	}
	return out
}
