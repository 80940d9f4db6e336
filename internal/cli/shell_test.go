package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/eternal-math/eternal/internal/model"
)

func newTestSession() (*shellSession, *bytes.Buffer) {
	var out bytes.Buffer
	return newShellSession(model.DefaultConfig(), &out), &out
}

func TestShellDispatchPrimes(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("primes 10")
	got := out.String()
	if !strings.Contains(got, "[2, 3, 5, 7]") {
		t.Errorf("primes output = %q", got)
	}
	if !strings.Contains(got, "4 primes <= 10") {
		t.Errorf("primes output missing count: %q", got)
	}
}

func TestShellPrimesCached(t *testing.T) {
	s, _ := newTestSession()
	if s.primes == nil {
		t.Fatal("default config should enable the cache")
	}
	s.sieve(100)
	if _, ok := s.primes.Get(100); !ok {
		t.Error("sieve result should be cached under its limit")
	}
	if _, ok := s.primes.Get(50); ok {
		t.Error("other limits must not be populated")
	}
}

func TestShellDispatchEuler(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("euler 12")
	if !strings.Contains(out.String(), "4") {
		t.Errorf("euler output = %q", out.String())
	}
}

func TestShellDispatchCRT(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("crt 2,3 3,5")
	if !strings.Contains(out.String(), "x = 8") {
		t.Errorf("crt output = %q", out.String())
	}
}

func TestShellDispatchConstants(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("constants")
	got := out.String()
	if !strings.Contains(got, "pi    = 3.14159") {
		t.Errorf("constants output = %q", got)
	}
	if !strings.Contains(got, "phi   = 1.61803") {
		t.Errorf("constants output missing phi: %q", got)
	}
}

func TestShellDispatchDomainError(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("crt 1,2 4,6")
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("non-coprime crt should print an error, got %q", out.String())
	}
}

func TestShellDispatchParseError(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("primes many")
	if !strings.Contains(out.String(), "not an integer") {
		t.Errorf("parse failure should be reported, got %q", out.String())
	}
}

func TestShellDispatchUnknown(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("frobnicate 7")
	if !strings.Contains(out.String(), "Unknown command") {
		t.Errorf("unknown command output = %q", out.String())
	}
}

func TestShellDispatchCaseInsensitive(t *testing.T) {
	s, out := newTestSession()
	s.dispatch("PRIMES 10")
	if !strings.Contains(out.String(), "[2, 3, 5, 7]") {
		t.Errorf("uppercase command output = %q", out.String())
	}
}

func TestShellQuitAliases(t *testing.T) {
	for _, cmd := range []string{"quit", "exit"} {
		s, _ := newTestSession()
		s.dispatch(cmd)
		if !s.quit {
			t.Errorf("%q should end the session", cmd)
		}
	}
}

func TestShellRunReadsUntilEOF(t *testing.T) {
	s, out := newTestSession()
	s.run(strings.NewReader("euler 10\nquit\n"))
	got := out.String()
	if !strings.Contains(got, "φ(10) = 4") {
		t.Errorf("run output = %q", got)
	}
	if !strings.Contains(got, "Goodbye") {
		t.Errorf("quit should say goodbye, got %q", got)
	}
}

func TestParseIntList(t *testing.T) {
	got, err := parseIntList("2, 3,5")
	if err != nil {
		t.Fatalf("parseIntList: %v", err)
	}
	if len(got) != 3 || got[0] != 2 || got[2] != 5 {
		t.Errorf("parseIntList = %v", got)
	}
	if _, err := parseIntList("2,x"); err == nil {
		t.Error("parseIntList should reject non-integers")
	}
}
