package search

import (
	"context"
	"testing"

	"github.com/eternal-math/eternal/internal/numtheory"
)

func TestPerfectNumbers(t *testing.T) {
	got, err := PerfectNumbers(context.Background(), 10_000, 4)
	if err != nil {
		t.Fatalf("PerfectNumbers: %v", err)
	}
	want := []int{6, 28, 496, 8128}
	if len(got) != len(want) {
		t.Fatalf("PerfectNumbers(10000) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPerfectNumbersMatchesSequentialScan(t *testing.T) {
	const limit = 2000
	var sequential []int
	for n := 1; n <= limit; n++ {
		if numtheory.IsPerfect(n) {
			sequential = append(sequential, n)
		}
	}

	for _, workers := range []int{1, 2, 7, 64} {
		got, err := PerfectNumbers(context.Background(), limit, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(got) != len(sequential) {
			t.Errorf("workers=%d: got %v, want %v", workers, got, sequential)
			continue
		}
		for i := range sequential {
			if got[i] != sequential[i] {
				t.Errorf("workers=%d: result[%d] = %d, want %d", workers, i, got[i], sequential[i])
			}
		}
	}
}

func TestPerfectNumbersEmptyRange(t *testing.T) {
	got, err := PerfectNumbers(context.Background(), 0, 4)
	if err != nil {
		t.Fatalf("PerfectNumbers: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("PerfectNumbers(0) = %v, want empty", got)
	}
}

func TestPerfectNumbersCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := PerfectNumbers(ctx, 1_000_000, 2); err == nil {
		t.Error("cancelled scan should return an error")
	}
}
