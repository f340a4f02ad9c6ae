package site

import (
	"encoding/json"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/blackstone-contractors/website/internal/blog"
	"github.com/blackstone-contractors/website/internal/content"
)

// SearchEntry represents a single searchable item on the site.
type SearchEntry struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex collects services, installations, FAQ answers and blog
// posts into a flat index.
func BuildSearchIndex(posts *blog.Index) []SearchEntry {
	var entries []SearchEntry

	for _, s := range content.Services() {
		entries = append(entries, SearchEntry{
			Path:    "/services#" + s.ID,
			Kind:    "Service",
			Title:   s.Title,
			Summary: s.Description,
			Content: strings.Join(s.Details, " "),
		})
	}
	for _, in := range content.Installations() {
		entries = append(entries, SearchEntry{
			Path:    "/installations#" + in.ID,
			Kind:    "Installation",
			Title:   in.Title,
			Summary: in.Description,
			Content: in.Subtitle + " " + strings.Join(in.Features, " ") + " " + strings.Join(in.FinishOptions, " "),
		})
	}
	for _, a := range content.AdditionalServices() {
		entries = append(entries, SearchEntry{
			Path:    "/additional-services#" + a.ID,
			Kind:    "Service",
			Title:   a.Title,
			Summary: a.Description,
			Content: strings.Join(a.Items, " "),
		})
	}
	for _, cat := range content.FAQ() {
		for _, q := range cat.Questions {
			entries = append(entries, SearchEntry{
				Path:    "/faq?category=" + url.QueryEscape(cat.Name),
				Kind:    "FAQ",
				Title:   q.Q,
				Summary: q.A,
			})
		}
	}
	if posts != nil {
		for _, p := range posts.Posts() {
			entries = append(entries, SearchEntry{
				Path:    "/blog/" + p.Slug,
				Kind:    "Article",
				Title:   p.Title,
				Summary: p.Excerpt,
				Content: p.Source,
			})
		}
	}
	return entries
}

// Search ranks entries against query. Title matches come first, ordered by
// fuzzy distance; entries whose text contains every query word follow in
// index order. An empty query returns nothing.
func Search(entries []SearchEntry, query string, limit int) []SearchEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	seen := make(map[int]bool, len(ranks))
	var out []SearchEntry
	for _, r := range ranks {
		seen[r.OriginalIndex] = true
		out = append(out, entries[r.OriginalIndex])
	}

	words := strings.Fields(strings.ToLower(query))
	for i, e := range entries {
		if seen[i] {
			continue
		}
		text := strings.ToLower(e.Title + " " + e.Summary + " " + e.Content)
		if containsAll(text, words) {
			out = append(out, e)
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func containsAll(text string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
