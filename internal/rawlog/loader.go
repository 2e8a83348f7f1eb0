// Package rawlog loads raw quiz log dumps and normalizes answer events into
// the uniform record schema consumed by the enrichment pipeline.
package rawlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/geoquiz/internal/answer"
)

// AnswerModel is the record kind consumed by the normalizer; every other
// kind in the dump is skipped.
const AnswerModel = "questions.answer"

// askedDateLayout matches the timestamp format of the raw dump.
const askedDateLayout = "2006-01-02T15:04:05"

// MalformedRecordError identifies a raw record that cannot be normalized.
type MalformedRecordError struct {
	Index int    // position in the dump
	Model string // record kind tag
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %d (%s): %v", e.Index, e.Model, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Options controls loader policy.
type Options struct {
	// Lenient skips malformed answer records instead of aborting, recording
	// them in the report.
	Lenient bool
}

// Report summarizes one load run.
type Report struct {
	RunID     string
	Total     int
	Answers   int
	Skipped   map[string]int // non-answer records by model tag
	Malformed []*MalformedRecordError
}

// rawRecord is one tagged entry of the dump.
type rawRecord struct {
	Model  string          `json:"model"`
	Fields json.RawMessage `json:"fields"`
}

// ident accepts a JSON string, number, or null and normalizes it to a
// string identifier. Older dumps store ids as integers, newer ones as
// strings.
type ident string

func (id *ident) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ident(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	// Integer ids keep their canonical form.
	if i, err := n.Int64(); err == nil {
		*id = ident(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ident(n.String())
	return nil
}

// answerFields is the typed view of a validated answer field map.
type answerFields struct {
	MsResponseTime float64           `json:"msResposeTime"`
	Place          ident             `json:"place"`
	Answer         ident             `json:"answer"`
	User           ident             `json:"user"`
	Options        []json.RawMessage `json:"options"`
	AskedDate      string            `json:"askedDate"`
}

// Load parses a raw dump and returns the normalized answer records.
// With default options the first malformed answer record aborts the load;
// non-answer records are never an error.
func Load(data []byte, opts Options) ([]answer.Record, *Report, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse dump: %w", err)
	}

	schema, err := compiledAnswerSchema()
	if err != nil {
		return nil, nil, fmt.Errorf("answer schema: %w", err)
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Total:   len(raw),
		Skipped: make(map[string]int),
	}

	records := make([]answer.Record, 0, len(raw))
	for i, item := range raw {
		if item.Model != AnswerModel {
			report.Skipped[item.Model]++
			continue
		}

		rec, err := normalize(item.Fields, schema)
		if err != nil {
			merr := &MalformedRecordError{Index: i, Model: item.Model, Err: err}
			if !opts.Lenient {
				return nil, report, merr
			}
			report.Malformed = append(report.Malformed, merr)
			continue
		}

		records = append(records, rec)
		report.Answers++
	}

	return records, report, nil
}

// LoadFile reads and loads a raw dump from disk.
func LoadFile(path string, opts Options) ([]answer.Record, *Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read dump: %w", err)
	}
	return Load(data, opts)
}

// normalize validates one answer field map and coerces it into a Record,
// applying the log transform to the response time.
func normalize(fields json.RawMessage, schema *jsonschema.Schema) (answer.Record, error) {
	var parsed any
	if err := json.Unmarshal(fields, &parsed); err != nil {
		return answer.Record{}, fmt.Errorf("invalid JSON fields: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return answer.Record{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var af answerFields
	if err := json.Unmarshal(fields, &af); err != nil {
		return answer.Record{}, fmt.Errorf("decode fields: %w", err)
	}

	inserted, err := time.Parse(askedDateLayout, af.AskedDate)
	if err != nil {
		return answer.Record{}, fmt.Errorf("parse askedDate: %w", err)
	}

	return answer.Record{
		User:          string(af.User),
		PlaceAsked:    string(af.Place),
		PlaceAnswered: string(af.Answer),
		ResponseTime:  math.Log(af.MsResponseTime),
		Options:       len(af.Options),
		Inserted:      inserted,
	}, nil
}
