package stats

import (
	"math"
	"testing"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %f, want 2.5", got)
	}
	if got := Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean(nil) = %f, want NaN", got)
	}
}

func TestStd(t *testing.T) {
	// Sample std of {2, 4, 4, 4, 5, 5, 7, 9} is ~2.138.
	got := Std([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, 2.1381) {
		t.Errorf("Std = %f, want 2.1381", got)
	}

	for _, values := range [][]float64{nil, {1}} {
		if got := Std(values); !math.IsNaN(got) {
			t.Errorf("Std(%v) = %f, want NaN", values, got)
		}
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 2})
	if lo != -1 || hi != 3 {
		t.Errorf("MinMax = (%f, %f), want (-1, 3)", lo, hi)
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		t.Fatalf("Linspace length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("Linspace[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestHistogram(t *testing.T) {
	counts, edges := Histogram([]float64{0, 0.1, 0.9, 1}, 2)
	if len(counts) != 2 || len(edges) != 3 {
		t.Fatalf("Histogram sizes = (%d, %d), want (2, 3)", len(counts), len(edges))
	}
	if counts[0] != 2 || counts[1] != 2 {
		t.Errorf("Histogram counts = %v, want [2 2]", counts)
	}
}

func TestHistogramConstant(t *testing.T) {
	counts, _ := Histogram([]float64{5, 5, 5}, 4)
	if counts[0] != 3 {
		t.Errorf("constant values should land in the first bin, got %v", counts)
	}
}

func TestKDEIntegratesToOne(t *testing.T) {
	values := []float64{1, 2, 2.5, 3, 4, 4.2, 5}
	xs := Linspace(-5, 11, 2000)
	density := KDE(values, xs)

	integral := 0.0
	step := xs[1] - xs[0]
	for _, d := range density {
		integral += d * step
	}
	if math.Abs(integral-1) > 0.01 {
		t.Errorf("KDE integral = %f, want ~1", integral)
	}
}

func TestKDETinySample(t *testing.T) {
	density := KDE([]float64{1}, []float64{0, 1, 2})
	for i, d := range density {
		if !math.IsNaN(d) {
			t.Errorf("KDE[%d] = %f, want NaN for a single-value sample", i, d)
		}
	}
}
