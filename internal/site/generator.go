package site

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-chi/chi/v5"

	"github.com/blackstone-contractors/website/internal/progress"
)

// notFoundPath is requested to render 404.html; nothing is routed there.
const notFoundPath = "/__not-found__"

// Exporter writes the site as static files for a host without a Go process.
type Exporter struct {
	Site      *Site
	OutputDir string
	// Exclude holds doublestar patterns matched against output paths such as
	// "blog/**" or "search/index.html".
	Exclude  []string
	Reporter progress.Reporter
}

// NewExporter creates an Exporter writing into outputDir.
func NewExporter(s *Site, outputDir string) *Exporter {
	return &Exporter{Site: s, OutputDir: outputDir, Reporter: progress.Nop{}}
}

// Pages returns the canonical URL path of every page, in menu order followed
// by blog posts and search.
func (s *Site) Pages() []string {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range s.nav.Paths() {
		add(p)
	}
	for _, p := range s.posts.Posts() {
		add("/blog/" + p.Slug)
	}
	add("/search")
	return out
}

// OutputPath maps a URL path to the file that serves it on a static host:
// "/" is index.html, "/about" is about/index.html, and paths with an
// extension are written as-is.
func OutputPath(urlPath string) string {
	if urlPath == notFoundPath {
		return "404.html"
	}
	p := strings.Trim(urlPath, "/")
	if p == "" {
		return "index.html"
	}
	if path.Ext(p) != "" {
		return p
	}
	return p + "/index.html"
}

// Export renders every page and asset into OutputDir. Returns the number of
// files written.
func (e *Exporter) Export() (int, error) {
	if !e.Site.opts.Static {
		return 0, fmt.Errorf("site must be built with Static set to export")
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	targets := append(e.Site.Pages(), "/static/style.css", "/static/site.js", notFoundPath)
	var files []string
	for _, t := range targets {
		excluded, err := matchesAny(OutputPath(t), e.Exclude)
		if err != nil {
			return 0, err
		}
		if !excluded {
			files = append(files, t)
		}
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, e.Site)

	reporter.Start(len(files) + 1)
	defer reporter.Finish()

	for i, target := range files {
		rel := OutputPath(target)
		reporter.Update(i+1, rel)
		if err := e.writeTarget(router, target, rel); err != nil {
			return i, fmt.Errorf("exporting %s: %w", target, err)
		}
	}

	indexPath := filepath.Join(e.OutputDir, "search-index.json")
	reporter.Update(len(files)+1, "search-index.json")
	if err := WriteSearchIndex(e.Site.index, indexPath); err != nil {
		return len(files), fmt.Errorf("writing search index: %w", err)
	}
	return len(files) + 1, nil
}

func (e *Exporter) writeTarget(h http.Handler, target, rel string) error {
	req, err := http.NewRequest(http.MethodGet, (&url.URL{Path: target}).String(), nil)
	if err != nil {
		return err
	}
	rec := newCaptureWriter()
	h.ServeHTTP(rec, req)

	wantStatus := http.StatusOK
	if target == notFoundPath {
		wantStatus = http.StatusNotFound
	}
	if rec.status != wantStatus {
		return fmt.Errorf("status %d", rec.status)
	}

	outPath := filepath.Join(e.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(outPath, rec.body.Bytes(), 0o644)
}

func matchesAny(rel string, patterns []string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, rel)
		if err != nil {
			return false, fmt.Errorf("bad exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// captureWriter buffers a handler's response in memory.
type captureWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newCaptureWriter() *captureWriter {
	return &captureWriter{header: http.Header{}}
}

func (c *captureWriter) Header() http.Header { return c.header }

func (c *captureWriter) WriteHeader(status int) {
	if c.status == 0 {
		c.status = status
	}
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	return c.body.Write(b)
}
