package site

import (
	"strings"
	"testing"

	"github.com/blackstone-contractors/website/internal/content"
)

func TestBuildTree(t *testing.T) {
	tree := BuildTree(content.Navigation())
	if len(tree.Children) != 8 {
		t.Fatalf("top-level entries = %d, want 8", len(tree.Children))
	}
	services := tree.Children[3]
	if services.Label != "Services" || len(services.Children) != 3 {
		t.Errorf("services entry = %q with %d children", services.Label, len(services.Children))
	}
}

func TestTreeIsActive(t *testing.T) {
	tree := BuildTree(content.Navigation())
	services := tree.Children[3]

	tests := []struct {
		path string
		want bool
	}{
		{"/services", true},
		{"/additional-services", true},
		{"/installations/", true},
		{"/gallery", false},
		{"/", false},
	}
	for _, tt := range tests {
		if got := services.IsActive(tt.path); got != tt.want {
			t.Errorf("IsActive(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if !tree.Children[0].IsActive("/") {
		t.Error("home should be active on /")
	}
	if tree.Children[0].IsActive("/about") {
		t.Error("home should not be active on /about")
	}
}

func TestTreeToHTML(t *testing.T) {
	html := BuildTree(content.Navigation()).ToHTML("/faq")

	if !strings.Contains(html, `<li class="nav-item active"><a href="/faq">FAQ</a></li>`) {
		t.Error("FAQ should be marked active")
	}
	if strings.Count(html, "active") != 1 {
		t.Errorf("expected exactly one active entry, got:\n%s", html)
	}
	if !strings.Contains(html, `<ul class="dropdown-menu">`) {
		t.Error("missing dropdown menu")
	}
}

func TestTreePaths(t *testing.T) {
	paths := BuildTree(content.Navigation()).Paths()
	want := []string{"/", "/about", "/why-choose-us", "/services", "/installations",
		"/additional-services", "/gallery", "/blog", "/faq", "/contact"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Errorf("Paths() = %v, want %v", paths, want)
	}
}
