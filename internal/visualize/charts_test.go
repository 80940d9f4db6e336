package visualize

import (
	"errors"
	"strings"
	"testing"
)

func TestChart(t *testing.T) {
	out, err := Chart([]float64{1, 3, 2, 5, 4}, "demo", 5)
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if !strings.Contains(out, "demo") {
		t.Error("chart should include its caption")
	}
	if strings.TrimSpace(out) == "" {
		t.Error("chart should not be blank")
	}
}

func TestChartEmpty(t *testing.T) {
	if _, err := Chart(nil, "x", 5); !errors.Is(err, ErrEmptySeries) {
		t.Errorf("empty chart error = %v, want ErrEmptySeries", err)
	}
}

func TestToFloats(t *testing.T) {
	got := ToFloats([]int{1, 2, 3})
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("ToFloats = %v", got)
	}
}

func TestGaps(t *testing.T) {
	got := Gaps([]int{2, 3, 5, 7, 11})
	want := []float64{1, 2, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("Gaps = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Gaps[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if Gaps([]int{7}) != nil {
		t.Error("Gaps of a single value should be nil")
	}
}
