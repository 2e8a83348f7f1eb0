package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/geoquiz/internal/answer"
)

// insertedLayout is the timestamp format of the enriched CSV.
const insertedLayout = "2006-01-02 15:04:05"

// csvHeader is the column order of the enriched interchange format.
var csvHeader = []string{
	"user", "place_asked", "place_answered", "response_time", "options",
	"inserted", "session", "count_all", "count_correct", "count_wrong",
}

// WriteCSV writes the dataset in the enriched interchange format.
// Floats use the shortest round-tripping representation, so writing and
// re-reading yields bit-identical records.
func (d Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range d.records {
		row := []string{
			r.User,
			r.PlaceAsked,
			r.PlaceAnswered,
			strconv.FormatFloat(r.ResponseTime, 'g', -1, 64),
			strconv.Itoa(r.Options),
			r.Inserted.Format(insertedLayout),
			strconv.Itoa(r.Session),
			strconv.Itoa(r.CountAll),
			strconv.Itoa(r.CountCorrect),
			strconv.Itoa(r.CountWrong),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// ReadCSV loads a dataset from the enriched interchange format.
func ReadCSV(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return Dataset{}, fmt.Errorf("empty csv")
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := cols[name]; !ok {
			return Dataset{}, fmt.Errorf("missing column %q", name)
		}
	}

	records := make([]answer.Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := parseRow(row, cols)
		if err != nil {
			return Dataset{}, fmt.Errorf("row %d: %w", n+1, err)
		}
		records = append(records, rec)
	}
	return Dataset{records: records}, nil
}

func parseRow(row []string, cols map[string]int) (answer.Record, error) {
	cell := func(name string) string { return row[cols[name]] }

	rt, err := strconv.ParseFloat(cell("response_time"), 64)
	if err != nil {
		return answer.Record{}, fmt.Errorf("response_time: %w", err)
	}
	options, err := parseOptions(cell("options"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("options: %w", err)
	}
	inserted, err := time.Parse(insertedLayout, cell("inserted"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("inserted: %w", err)
	}
	session, err := strconv.Atoi(cell("session"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("session: %w", err)
	}
	countAll, err := strconv.Atoi(cell("count_all"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("count_all: %w", err)
	}
	countCorrect, err := strconv.Atoi(cell("count_correct"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("count_correct: %w", err)
	}
	countWrong, err := strconv.Atoi(cell("count_wrong"))
	if err != nil {
		return answer.Record{}, fmt.Errorf("count_wrong: %w", err)
	}

	return answer.Record{
		User:          cell("user"),
		PlaceAsked:    cell("place_asked"),
		PlaceAnswered: cell("place_answered"),
		ResponseTime:  rt,
		Options:       options,
		Inserted:      inserted,
		Session:       session,
		CountAll:      countAll,
		CountCorrect:  countCorrect,
		CountWrong:    countWrong,
	}, nil
}

// parseOptions accepts either an option count or, in older dumps, the raw
// bracketed option list; the list collapses to its length.
func parseOptions(cell string) (int, error) {
	if IsListCell(cell) {
		ids, err := ParseIntList(cell)
		if err != nil {
			return 0, err
		}
		return len(ids), nil
	}
	return strconv.Atoi(cell)
}

// IsListCell reports whether a CSV cell holds a bracketed list.
func IsListCell(cell string) bool {
	return strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]")
}

// ParseIntList parses a bracketed comma-separated cell like "[1, 2, 3]"
// into its integer items. "[]" yields an empty list.
func ParseIntList(cell string) ([]int, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(cell, "["), "]")
	body = strings.ReplaceAll(body, " ", "")
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("list item %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
