package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()

	for i := 0; i < 10; i++ {
		c.Record("Shared Mutex Time", time.Duration(i)*time.Microsecond)
	}
	c.Record("Standard Mutex Time", 5*time.Millisecond)

	if got := c.Count("Shared Mutex Time"); got != 10 {
		t.Errorf("shared count = %d, want 10", got)
	}
	if got := c.Count("Standard Mutex Time"); got != 1 {
		t.Errorf("exclusive count = %d, want 1", got)
	}
	if got := c.Count("unknown"); got != 0 {
		t.Errorf("unknown count = %d, want 0", got)
	}
}

func TestSummarizeOrderAndSkips(t *testing.T) {
	c := NewCollector()
	c.Record("Shared Mutex Time", 100*time.Microsecond)
	c.Record("Standard Mutex Time", 2*time.Millisecond)

	var buf bytes.Buffer
	c.Summarize(&buf, []string{
		"Shared Mutex Time", "never recorded", "Standard Mutex Time",
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d summary lines, want 2:\n%s", len(lines), buf.String())
	}

	if !strings.HasPrefix(lines[0], "Shared Mutex Time lock wait:") {
		t.Errorf("first line = %q, want shared strategy first", lines[0])
	}
	if !strings.Contains(lines[0], "p50=") {
		t.Errorf("line %q missing p50", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Standard Mutex Time lock wait:") {
		t.Errorf("second line = %q, want exclusive strategy", lines[1])
	}
}

func TestFormatUs(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0us"},
		{999, "999us"},
		{1000, "1.00ms"},
		{1500, "1.50ms"},
		{2500000, "2500.00ms"},
	}

	for _, tt := range tests {
		got := formatUs(tt.input)
		if got != tt.want {
			t.Errorf("formatUs(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
