package enrich

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/geoquiz/internal/answer"
)

func TestEnrichSameSessionStreak(t *testing.T) {
	// One user, two answers to the same place ten minutes apart:
	// correct, then wrong.
	records := []answer.Record{
		rec("u1", "A", "A", t0),
		rec("u1", "A", "B", t0.Add(10*time.Minute)),
	}
	got := Enrich(records, Options{})

	first, second := got[0], got[1]
	if first.CountAll != 0 || first.CountCorrect != 0 || first.CountWrong != 0 {
		t.Errorf("first counters = (%d, %d, %d), want zeros",
			first.CountAll, first.CountCorrect, first.CountWrong)
	}
	if second.CountAll != 1 || second.CountCorrect != 1 || second.CountWrong != 0 {
		t.Errorf("second counters = (%d, %d, %d), want (1, 1, 0)",
			second.CountAll, second.CountCorrect, second.CountWrong)
	}
	if first.Session != second.Session {
		t.Errorf("sessions %d and %d, want same", first.Session, second.Session)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	records := []answer.Record{
		rec("u2", "cz", "cz", t0.Add(time.Hour)),
		rec("u1", "cz", "", t0),
		rec("u1", "sk", "sk", t0.Add(45*time.Minute)),
		rec("u1", "cz", "cz", t0.Add(46*time.Minute)),
	}
	first := Enrich(records, Options{})
	second := Enrich(records, Options{})
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over the same input differ")
	}
}

func TestEnrichCustomGap(t *testing.T) {
	records := []answer.Record{
		rec("u1", "cz", "cz", t0),
		rec("u1", "cz", "cz", t0.Add(10*time.Minute)),
	}
	got := Enrich(records, Options{SessionGap: 5 * time.Minute})
	if got[0].Session == got[1].Session {
		t.Error("10 minute gap with 5 minute threshold should split sessions")
	}
}
