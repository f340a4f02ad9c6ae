package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackstone-contractors/website/internal/blog"
	"github.com/blackstone-contractors/website/internal/content"
)

func newStaticSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(Options{Static: true}, content.Catalog(), blog.MustLoad(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "index.html"},
		{"/about", "about/index.html"},
		{"/blog/concrete-curing-process", "blog/concrete-curing-process/index.html"},
		{"/static/style.css", "static/style.css"},
		{notFoundPath, "404.html"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPages(t *testing.T) {
	pages := newStaticSite(t).Pages()
	if pages[0] != "/" {
		t.Errorf("first page = %q, want /", pages[0])
	}
	want := map[string]bool{"/gallery": false, "/faq": false, "/blog/winter-concrete-installation": false, "/search": false}
	for _, p := range pages {
		if _, ok := want[p]; ok {
			want[p] = true
		}
	}
	for p, found := range want {
		if !found {
			t.Errorf("Pages() missing %s", p)
		}
	}
}

func TestFullSiteExport(t *testing.T) {
	outDir := t.TempDir()
	e := NewExporter(newStaticSite(t), outDir)

	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	// 10 menu pages, 6 posts, search, 2 assets, 404 and the search index.
	if n != 21 {
		t.Errorf("Export() = %d files, want 21", n)
	}

	expected := []string{
		"index.html",
		"about/index.html",
		"services/index.html",
		"gallery/index.html",
		"blog/index.html",
		"blog/choosing-right-concrete-finish/index.html",
		"faq/index.html",
		"contact/index.html",
		"404.html",
		"static/style.css",
		"static/site.js",
		"search-index.json",
	}
	for _, f := range expected {
		if _, err := os.Stat(filepath.Join(outDir, f)); err != nil {
			t.Errorf("expected file %s not found: %v", f, err)
		}
	}

	html, err := os.ReadFile(filepath.Join(outDir, "gallery", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<body data-static>") {
		t.Error("exported pages should be marked static")
	}
	if !strings.Contains(string(html), "Decorative Stamped Walkway") {
		t.Error("gallery page missing catalog items")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "search-index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var entries []SearchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("search-index.json: %v", err)
	}
	if len(entries) == 0 {
		t.Error("search index is empty")
	}
}

func TestExportExcludes(t *testing.T) {
	outDir := t.TempDir()
	e := NewExporter(newStaticSite(t), outDir)
	e.Exclude = []string{"blog/*/index.html", "search/**"}

	n, err := e.Export()
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if n != 14 {
		t.Errorf("Export() = %d files, want 14", n)
	}
	if _, err := os.Stat(filepath.Join(outDir, "blog", "index.html")); err != nil {
		t.Error("blog index should still be exported")
	}
	if _, err := os.Stat(filepath.Join(outDir, "blog", "concrete-curing-process")); !os.IsNotExist(err) {
		t.Error("blog posts should be excluded")
	}
}

func TestExportRequiresStatic(t *testing.T) {
	s, err := New(Options{}, content.Catalog(), blog.MustLoad(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewExporter(s, t.TempDir()).Export(); err == nil {
		t.Error("expected an error exporting a non-static site")
	}
}

func TestExportBadPattern(t *testing.T) {
	e := NewExporter(newStaticSite(t), t.TempDir())
	e.Exclude = []string{"[unclosed"}
	if _, err := e.Export(); err == nil {
		t.Error("expected an error for a malformed pattern")
	}
}
