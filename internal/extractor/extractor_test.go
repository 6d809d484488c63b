package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/sitetext/internal/model"
)

// serveHTML returns a test server that serves the given HTML body.
func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// TestExtractTagOrder tests that tag-table order wins over document order
// across tag types, while document order is preserved within one tag.
func TestExtractTagOrder(t *testing.T) {
	t.Parallel()

	t.Run("h1 before p regardless of document order", func(t *testing.T) {
		t.Parallel()

		server := serveHTML(t, `<html><body><p>World</p><h1>Hello</h1></body></html>`)
		e := New(WithClient(server.Client()))

		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
		if section.Failed() {
			t.Fatalf("unexpected extraction error: %s", section.Err)
		}

		want := []string{"# Hello", "World"}
		if len(section.Lines) != len(want) {
			t.Fatalf("lines = %q, want %q", section.Lines, want)
		}
		for i, line := range section.Lines {
			if line != want[i] {
				t.Errorf("line %d = %q, want %q", i, line, want[i])
			}
		}
	})

	t.Run("document order preserved within a tag", func(t *testing.T) {
		t.Parallel()

		server := serveHTML(t, `<html><body><h2>First</h2><p>x</p><h2>Second</h2></body></html>`)
		e := New(WithClient(server.Client()))

		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
		want := []string{"## First", "## Second", "x"}
		if len(section.Lines) != len(want) {
			t.Fatalf("lines = %q, want %q", section.Lines, want)
		}
		for i, line := range section.Lines {
			if line != want[i] {
				t.Errorf("line %d = %q, want %q", i, line, want[i])
			}
		}
	})

	t.Run("full default table order", func(t *testing.T) {
		t.Parallel()

		server := serveHTML(t, `<html><head><title>Page</title></head><body>
<ul><li>item</li></ul>
<p>para</p>
<h3>sub</h3>
<h2>mid</h2>
<h1>top</h1>
</body></html>`)
		e := New(WithClient(server.Client()))

		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
		want := []string{"# Page", "# top", "## mid", "### sub", "para", "- item"}
		if strings.Join(section.Lines, "|") != strings.Join(want, "|") {
			t.Errorf("lines = %q, want %q", section.Lines, want)
		}
	})
}

// TestExtractNormalization tests whitespace handling and empty elements.
func TestExtractNormalization(t *testing.T) {
	t.Parallel()

	t.Run("whitespace collapsed and trimmed", func(t *testing.T) {
		t.Parallel()

		server := serveHTML(t, "<html><body><p>  spaced \n\t out  </p></body></html>")
		e := New(WithClient(server.Client()))

		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
		if len(section.Lines) != 1 || section.Lines[0] != "spaced out" {
			t.Errorf("lines = %q, want [\"spaced out\"]", section.Lines)
		}
	})

	t.Run("empty elements skipped", func(t *testing.T) {
		t.Parallel()

		server := serveHTML(t, `<html><body><h1></h1><h1>  </h1><p>kept</p></body></html>`)
		e := New(WithClient(server.Client()))

		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
		if len(section.Lines) != 1 || section.Lines[0] != "kept" {
			t.Errorf("lines = %q, want [\"kept\"]", section.Lines)
		}
	})
}

// TestExtractFailure tests that failures surface as section data.
func TestExtractFailure(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(server.Close)

		e := New(WithClient(server.Client()))
		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())

		if !section.Failed() {
			t.Fatal("expected failed section")
		}
		if !strings.Contains(section.Err, "503") {
			t.Errorf("Err = %q, want status mention", section.Err)
		}
		if len(section.Lines) != 0 {
			t.Errorf("failed section must have no lines, got %q", section.Lines)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(server.Close)

		e := New(WithClient(server.Client()), WithTimeout(20*time.Millisecond))
		section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())

		if !section.Failed() {
			t.Fatal("expected failed section")
		}
		if section.Err == "" {
			t.Error("expected non-empty error message")
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		deadURL := server.URL
		server.Close()

		e := New()
		section := e.Extract(context.Background(), deadURL, model.DefaultTagRules())
		if !section.Failed() {
			t.Fatal("expected failed section")
		}
	})
}

// TestExtractTimestamp tests that the scrape timestamp comes from the clock.
func TestExtractTimestamp(t *testing.T) {
	t.Parallel()

	server := serveHTML(t, `<html><body><p>x</p></body></html>`)
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	e := New(WithClient(server.Client()), withNow(func() time.Time { return fixed }))

	section := e.Extract(context.Background(), server.URL, model.DefaultTagRules())
	if !section.ScrapedAt.Equal(fixed) {
		t.Errorf("ScrapedAt = %v, want %v", section.ScrapedAt, fixed)
	}
}
