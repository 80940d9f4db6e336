package bench

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Report is the serialized form of a benchmark run.
type Report struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	Results     []Result  `yaml:"results"`
}

// WriteReport writes the results as YAML to path.
func WriteReport(path string, results []Result) (err error) {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		Results:     results,
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report file: %w", closeErr)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Summary renders the results as an aligned text table.
func Summary(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %10s %6s %12s %12s %12s\n", "case", "n", "iters", "mean", "min", "max")
	for _, r := range results {
		fmt.Fprintf(&b, "%-28s %10d %6d %12v %12v %12v\n",
			r.Name, r.InputSize, r.Iterations, r.Mean, r.Min, r.Max)
	}
	return b.String()
}
