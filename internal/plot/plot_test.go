package plot

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestHistogram(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := Histogram(&buf, "Response Time (log)", []float64{1, 1.1, 1.2, 3, 3.1}, 2, 60)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Response Time (log)") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "3") {
		t.Error("missing bin count")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Title plus one line per bin.
	if len(lines) != 3 {
		t.Errorf("line count = %d, want 3", len(lines))
	}
}

func TestHistogramEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Histogram(&buf, "t", nil, 10, 60); err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if !strings.Contains(buf.String(), "No data") {
		t.Errorf("output = %q, want no-data notice", buf.String())
	}
}

func TestDensities(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	series := []Series{
		{Name: "Correct Answers", Values: []float64{0, 0.2, 0.5, 0.2, 0}},
		{Name: "Wrong Answers", Values: []float64{0.1, 0.3, 0.1, 0.05, 0}},
	}
	var buf bytes.Buffer
	if err := Densities(&buf, "Density", series, 40, 8); err != nil {
		t.Fatalf("Densities: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Correct Answers") || !strings.Contains(out, "Wrong Answers") {
		t.Error("legend missing a series name")
	}
	// Title + 8 plot rows + legend.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Errorf("line count = %d, want 10", len(lines))
	}
}

func TestDensitiesAllNaN(t *testing.T) {
	series := []Series{{Name: "x", Values: []float64{math.NaN(), math.NaN()}}}
	var buf bytes.Buffer
	if err := Densities(&buf, "t", series, 40, 8); err != nil {
		t.Fatalf("Densities: %v", err)
	}
	if !strings.Contains(buf.String(), "No data") {
		t.Errorf("output = %q, want no-data notice", buf.String())
	}
}

func TestTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	err := Table(&buf,
		[]string{"Place", "Success"},
		[][]string{{"cz", "0.75"}, {"sk", "0.50"}},
		map[int]bool{1: true},
	)
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "cz") {
		t.Errorf("row = %q, want cz first", lines[1])
	}
	// Right-aligned numeric column.
	if !strings.HasSuffix(lines[2], "0.50") {
		t.Errorf("row = %q, want right-aligned 0.50", lines[2])
	}
}
