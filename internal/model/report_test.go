package model

import (
	"testing"
	"time"
)

// TestNewRunReport tests that the counts invariant holds by construction.
func TestNewRunReport(t *testing.T) {
	t.Parallel()

	t.Run("counts derive from inputs", func(t *testing.T) {
		t.Parallel()

		sections := []ExtractionSection{
			{URL: "https://a.example.com"},
			{URL: "https://b.example.com"},
		}
		report := NewRunReport(time.Now(), "sitemap.txt", 5, sections)

		if report.TotalScanned != 5 {
			t.Errorf("TotalScanned = %d, want 5", report.TotalScanned)
		}
		if report.TotalValid != 2 {
			t.Errorf("TotalValid = %d, want 2", report.TotalValid)
		}
		if report.TotalFailed != 3 {
			t.Errorf("TotalFailed = %d, want 3", report.TotalFailed)
		}
		if report.TotalValid+report.TotalFailed != report.TotalScanned {
			t.Error("counts invariant violated")
		}
	})

	t.Run("zero sections", func(t *testing.T) {
		t.Parallel()

		report := NewRunReport(time.Now(), "sitemap.txt", 3, nil)
		if report.TotalValid != 0 || report.TotalFailed != 3 {
			t.Errorf("got valid=%d failed=%d, want 0/3", report.TotalValid, report.TotalFailed)
		}
	})
}

// TestDefaultTagRules tests the fixed extraction table and its order.
func TestDefaultTagRules(t *testing.T) {
	t.Parallel()

	rules := DefaultTagRules()

	want := []TagRule{
		{Tag: "title", Prefix: "#"},
		{Tag: "h1", Prefix: "#"},
		{Tag: "h2", Prefix: "##"},
		{Tag: "h3", Prefix: "###"},
		{Tag: "p", Prefix: ""},
		{Tag: "li", Prefix: "-"},
	}

	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, r := range rules {
		if r != want[i] {
			t.Errorf("rule %d = %+v, want %+v", i, r, want[i])
		}
	}

	// Mutating the returned slice must not affect later calls.
	rules[0].Prefix = "mutated"
	if DefaultTagRules()[0].Prefix != "#" {
		t.Error("DefaultTagRules must return a fresh slice")
	}
}

// TestTagNames tests tag name extraction order.
func TestTagNames(t *testing.T) {
	t.Parallel()

	names := TagNames(DefaultTagRules())
	want := []string{"title", "h1", "h2", "h3", "p", "li"}
	for i, n := range names {
		if n != want[i] {
			t.Errorf("name %d = %q, want %q", i, n, want[i])
		}
	}
}
