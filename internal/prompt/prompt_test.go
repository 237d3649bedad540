package prompt

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestTextRejectsEmptyThenAccepts(t *testing.T) {
	r, out := newTestReader("\n   \nThe Hobbit\n")

	got, err := r.Text("Enter the book title: ")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "The Hobbit" {
		t.Errorf("got %q, want The Hobbit", got)
	}
	if n := strings.Count(out.String(), "Invalid input:"); n != 2 {
		t.Errorf("got %d rejection messages, want 2", n)
	}
}

func TestTextTrimsWhitespace(t *testing.T) {
	r, _ := newTestReader("  Dune  \n")

	got, err := r.Text("> ")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Dune" {
		t.Errorf("got %q, want Dune", got)
	}
}

func TestIntRejectsNonNumeric(t *testing.T) {
	r, out := newTestReader("abc\n-300\n")

	got, err := r.Int("Enter the publication year: ")
	if err != nil {
		t.Fatalf("Int: %v", err)
	}
	if got != -300 {
		t.Errorf("got %d, want -300", got)
	}
	if !strings.Contains(out.String(), "whole number") {
		t.Errorf("missing rejection message: %q", out.String())
	}
}

func TestIntInRangeRejectsOutOfRange(t *testing.T) {
	r, out := newTestReader("9\nabc\n0\n4\n")

	got, err := r.IntInRange("Enter your choice: ", 1, 6)
	if err != nil {
		t.Fatalf("IntInRange: %v", err)
	}
	if got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if !strings.Contains(out.String(), "between 1 and 6") {
		t.Errorf("missing range message: %q", out.String())
	}
	if n := strings.Count(out.String(), "Invalid input:"); n != 3 {
		t.Errorf("got %d rejections, want 3", n)
	}
}

func TestYesNoTokens(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"YES\n", true},
		{"no\n", false},
		{"N\n", false},
	}
	for _, tc := range cases {
		r, _ := newTestReader(tc.input)
		got, err := r.YesNo("Read? ")
		if err != nil {
			t.Fatalf("YesNo(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("YesNo(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestYesNoRejectsOtherTokens(t *testing.T) {
	r, out := newTestReader("maybe\nyes\n")

	got, err := r.YesNo("Read? ")
	if err != nil {
		t.Fatalf("YesNo: %v", err)
	}
	if !got {
		t.Error("got false, want true")
	}
	if !strings.Contains(out.String(), "'yes' or 'no'") {
		t.Errorf("missing rejection message: %q", out.String())
	}
}

func TestEOFSurfacesAsError(t *testing.T) {
	r, _ := newTestReader("")
	if _, err := r.Text("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Text at EOF returned %v, want io.EOF", err)
	}

	r, _ = newTestReader("not-a-number\n")
	if _, err := r.Int("> "); !errors.Is(err, io.EOF) {
		t.Errorf("Int exhausted input returned %v, want io.EOF", err)
	}
}

func TestAcknowledgeConsumesEmptyLine(t *testing.T) {
	r, out := newTestReader("\n")
	if err := r.Acknowledge("Press Enter to continue..."); err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if !strings.Contains(out.String(), "Press Enter") {
		t.Errorf("prompt not written: %q", out.String())
	}
}
