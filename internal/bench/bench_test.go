package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestTimeRecordsStatistics(t *testing.T) {
	r := NewRunner(nil)
	calls := 0
	res := r.Time("noop", 42, 5, func() { calls++ })

	if calls != 5 {
		t.Errorf("fn called %d times, want 5", calls)
	}
	if res.Name != "noop" || res.InputSize != 42 || res.Iterations != 5 {
		t.Errorf("result metadata = %+v", res)
	}
	if res.Min > res.Mean || res.Mean > res.Max {
		t.Errorf("expected min <= mean <= max, got %v %v %v", res.Min, res.Mean, res.Max)
	}
	if res.Total < res.Max {
		t.Errorf("total %v < max %v", res.Total, res.Max)
	}
	if len(r.Results()) != 1 {
		t.Errorf("runner recorded %d results", len(r.Results()))
	}
}

func TestTimeClampsIterations(t *testing.T) {
	r := NewRunner(nil)
	calls := 0
	res := r.Time("clamped", 0, 0, func() { calls++ })
	if calls != 1 || res.Iterations != 1 {
		t.Errorf("zero iterations should clamp to 1, ran %d", calls)
	}
	if res.StdDev != 0 {
		t.Errorf("single observation StdDev = %v, want 0", res.StdDev)
	}
}

func TestStdDev(t *testing.T) {
	// Sample std dev of {1, 3} ns is sqrt(2) ≈ 1.41ns, truncated to 1ns.
	got := stdDev([]time.Duration{1, 3})
	if got != 1 {
		t.Errorf("stdDev({1ns,3ns}) = %v, want 1ns", got)
	}
	if stdDev([]time.Duration{5}) != 0 {
		t.Error("single sample should have zero deviation")
	}
}

func TestSuiteRunsAllCases(t *testing.T) {
	s := NewSuite(nil, 2)
	s.Sieve([]int{100, 1000})
	s.PrimeChecks()
	s.Fibonacci([]int{50})
	s.PerfectScan([]int{500})
	s.Totient([]int{360})

	results := s.Results()
	if len(results) != 10 {
		t.Errorf("suite recorded %d results, want 10", len(results))
	}
	for _, r := range results {
		if r.Mean < 0 {
			t.Errorf("case %s has negative mean", r.Name)
		}
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	results := []Result{{Name: "sieve(100)", InputSize: 100, Iterations: 3, Mean: time.Microsecond}}

	if err := WriteReport(path, results); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if len(report.Results) != 1 || report.Results[0].Name != "sieve(100)" {
		t.Errorf("report round-trip = %+v", report)
	}
}

func TestSummary(t *testing.T) {
	out := Summary([]Result{{Name: "sieve(100)", InputSize: 100, Iterations: 3}})
	if !strings.Contains(out, "sieve(100)") {
		t.Errorf("summary missing case name:\n%s", out)
	}
	if !strings.Contains(out, "mean") {
		t.Errorf("summary missing header:\n%s", out)
	}
}
