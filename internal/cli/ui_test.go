package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int
		limit int
		want  string
	}{
		{"empty", nil, 4, ""},
		{"under limit", []int{3, 1, 4}, 4, "3 1 4"},
		{"at limit", []int{1, 2}, 2, "1 2"},
		{"truncated", []int{0, 1, 2, 3, 4, 5}, 4, "0 1 2 3 +2 more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.ids, tt.limit); got != tt.want {
				t.Errorf("summarize(%v, %d) = %q, want %q", tt.ids, tt.limit, got, tt.want)
			}
		})
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New("something broke"))

	if !strings.Contains(buf.String(), "something broke") {
		t.Errorf("error text missing: %q", buf.String())
	}
}
