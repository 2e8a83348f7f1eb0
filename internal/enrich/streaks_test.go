package enrich

import (
	"testing"
	"time"

	"github.com/abhisek/geoquiz/internal/answer"
)

func TestStreaksFirstOccurrenceZero(t *testing.T) {
	records := []answer.Record{
		rec("u1", "cz", "cz", t0),
		rec("u1", "sk", "", t0.Add(time.Minute)),
		rec("u2", "cz", "cz", t0.Add(2*time.Minute)),
	}
	got := Streaks(records)
	for _, r := range got {
		if r.CountAll != 0 || r.CountCorrect != 0 || r.CountWrong != 0 {
			t.Errorf("first (user=%s, place=%s) counters = (%d, %d, %d), want zeros",
				r.User, r.PlaceAsked, r.CountAll, r.CountCorrect, r.CountWrong)
		}
	}
}

func TestStreaksPriorHistory(t *testing.T) {
	// u1 answers cz correctly, then incorrectly, then not at all.
	records := []answer.Record{
		rec("u1", "cz", "cz", t0),
		rec("u1", "cz", "sk", t0.Add(time.Minute)),
		rec("u1", "cz", "", t0.Add(2*time.Minute)),
	}
	got := Streaks(records)

	want := []struct{ all, correct, wrong int }{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
	}
	for i, w := range want {
		r := got[i]
		if r.CountAll != w.all || r.CountCorrect != w.correct || r.CountWrong != w.wrong {
			t.Errorf("record %d counters = (%d, %d, %d), want (%d, %d, %d)",
				i, r.CountAll, r.CountCorrect, r.CountWrong, w.all, w.correct, w.wrong)
		}
	}
}

func TestStreaksSumInvariant(t *testing.T) {
	records := []answer.Record{
		rec("u1", "cz", "cz", t0),
		rec("u1", "cz", "", t0.Add(time.Minute)),
		rec("u1", "sk", "sk", t0.Add(2*time.Minute)),
		rec("u1", "cz", "cz", t0.Add(3*time.Minute)),
		rec("u2", "cz", "sk", t0.Add(4*time.Minute)),
		rec("u2", "cz", "cz", t0.Add(5*time.Minute)),
	}
	for _, r := range Streaks(records) {
		if r.CountAll != r.CountCorrect+r.CountWrong {
			t.Errorf("(user=%s, place=%s) count_all=%d != correct=%d + wrong=%d",
				r.User, r.PlaceAsked, r.CountAll, r.CountCorrect, r.CountWrong)
		}
	}
}

func TestStreaksUnansweredCountsWrong(t *testing.T) {
	records := []answer.Record{
		rec("u1", "cz", "", t0),
		rec("u1", "cz", "cz", t0.Add(time.Minute)),
	}
	got := Streaks(records)
	if got[1].CountWrong != 1 {
		t.Errorf("count_wrong after unanswered = %d, want 1", got[1].CountWrong)
	}
	if got[1].CountAll != 1 {
		t.Errorf("count_all after unanswered = %d, want 1", got[1].CountAll)
	}
}

func TestStreaksResetAcrossKeys(t *testing.T) {
	records := []answer.Record{
		rec("u1", "cz", "cz", t0),
		rec("u1", "cz", "cz", t0.Add(time.Minute)),
		rec("u1", "sk", "sk", t0.Add(2*time.Minute)),
		rec("u2", "cz", "cz", t0.Add(3*time.Minute)),
	}
	got := Streaks(records)
	for _, r := range got {
		if r.PlaceAsked == "sk" && r.CountAll != 0 {
			t.Errorf("counters leaked across place change: count_all=%d", r.CountAll)
		}
		if r.User == "u2" && r.CountAll != 0 {
			t.Errorf("counters leaked across user change: count_all=%d", r.CountAll)
		}
	}
}
