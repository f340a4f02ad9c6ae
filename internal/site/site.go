// Package site renders the Blackstone Contractors website: page handlers,
// navigation, search and static export.
package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blackstone-contractors/website/internal/blog"
	"github.com/blackstone-contractors/website/internal/contact"
	"github.com/blackstone-contractors/website/internal/content"
	"github.com/blackstone-contractors/website/internal/faq"
	"github.com/blackstone-contractors/website/internal/gallery"
)

const searchLimit = 20

// Options configures a Site.
type Options struct {
	SiteName string
	// Static renders pages for a host that only serves files: client-side
	// scripts take over query-string state and the contact form.
	Static bool
	Logger *zap.Logger
}

// Site serves every page of the website.
type Site struct {
	renderer *Renderer
	nav      *NavTree
	catalog  *gallery.Catalog
	posts    *blog.Index
	intake   *contact.Intake
	index    []SearchEntry
	opts     Options
	logger   *zap.Logger
	now      func() time.Time
}

// New builds a Site. intake may be nil when the site is only exported.
func New(opts Options, catalog *gallery.Catalog, posts *blog.Index, intake *contact.Intake) (*Site, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	if opts.SiteName == "" {
		opts.SiteName = "Blackstone Contractors LLC"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if intake == nil {
		intake = contact.NewIntake(nil, logger)
	}
	return &Site{
		renderer: r,
		nav:      BuildTree(content.Navigation()),
		catalog:  catalog,
		posts:    posts,
		intake:   intake,
		index:    BuildSearchIndex(posts),
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// RegisterRoutes mounts every page, the search API and the static assets.
func RegisterRoutes(r chi.Router, s *Site) {
	r.Get("/", s.handlePage("home", "", "Premium concrete contractor serving Orting, King County and Pierce County.", s.homeData))
	r.Get("/about", s.handlePage("about", "About Us", "Owner-operated concrete contractor with 9+ years of experience.", s.aboutData))
	r.Get("/why-choose-us", s.handlePage("why-choose-us", "Why Choose Us", "Why homeowners and businesses trust Blackstone Contractors.", s.whyData))
	r.Get("/services", s.handlePage("services", "Concrete Services", "Flatwork, stamped concrete, broom finish, exposed aggregate and more.", s.servicesData))
	r.Get("/installations", s.handlePage("installations", "Installations", "Driveways, sidewalks, patios and steps built to last.", s.installationsData))
	r.Get("/additional-services", s.handlePage("additional-services", "Additional Services", "Concrete demolition and repair.", s.additionalData))
	r.Get("/gallery", s.handleGallery())
	r.Get("/blog", s.handleBlog())
	r.Get("/blog/{slug}", s.handlePost())
	r.Get("/faq", s.handleFAQ())
	r.Get("/contact", s.handleContact())
	r.Post("/contact", s.handleContactSubmit())
	r.Get("/search", s.handleSearch())
	r.Get("/api/search", s.handleSearchAPI())
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/static/site.js", serveAsset("application/javascript; charset=utf-8", jsContent))
	r.NotFound(s.handleNotFound())
}

// page fills the shared layout fields.
func (s *Site) page(path, title, description string, data any) Page {
	return Page{
		Title:       title,
		Description: description,
		Path:        path,
		SiteName:    s.opts.SiteName,
		Static:      s.opts.Static,
		Nav:         template.HTML(s.nav.ToHTML(path)),
		Business:    content.Blackstone(),
		Footer:      content.FooterColumns(),
		Year:        s.now().Year(),
		Data:        data,
	}
}

// render executes into a buffer first so a template error never leaves a
// half-written page.
func (s *Site) render(w http.ResponseWriter, status int, name string, p Page) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, name, p); err != nil {
		s.logger.Error("rendering page", zap.String("page", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Site) handlePage(name, title, description string, data func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, http.StatusOK, name, s.page(r.URL.Path, title, description, data()))
	}
}

func (s *Site) homeData() any {
	return struct {
		Stats       []content.Stat
		Services    []content.Card
		Differences []content.Feature
		Process     []content.Step
	}{content.Stats(), content.HomeServices(), content.Differences(), content.Process()}
}

func (s *Site) aboutData() any {
	return struct {
		Header Header
		Stats  []content.Stat
		Values []content.Feature
		Areas  []string
	}{
		Header{"About Us", "Built on Experience, Driven by Excellence", "For over 9 years, we've been transforming properties across Washington with premium concrete work that stands the test of time."},
		content.Stats(), content.Values(), content.ServiceAreas(),
	}
}

func (s *Site) whyData() any {
	return struct {
		Header  Header
		Reasons []content.Feature
		Process []content.Step
	}{
		Header{"Why Choose Us", "The Blackstone Difference", "Not all concrete contractors are created equal. Discover why homeowners and businesses trust Blackstone Contractors for their projects."},
		content.Reasons(), content.Process(),
	}
}

func (s *Site) servicesData() any {
	return struct {
		Header   Header
		Services []content.Service
	}{
		Header{"Concrete Services", "Crafting Excellence In Every Pour", "From standard flatwork to decorative finishes, we offer a complete range of concrete services to bring your vision to life."},
		content.Services(),
	}
}

func (s *Site) installationsData() any {
	return struct {
		Header        Header
		Installations []content.Installation
	}{
		Header{"Installations", "Transform Your Property", "Professional installation of driveways, sidewalks, patios, and steps. Built to last, designed to impress."},
		content.Installations(),
	}
}

func (s *Site) additionalData() any {
	return struct {
		Header   Header
		Services []content.AdditionalService
		Promises []content.Feature
	}{
		Header{"Additional Services", "Complete Concrete Solutions", "Beyond new installations, we handle demolition and repairs so every stage of your project is covered."},
		content.AdditionalServices(), content.AdditionalServicePromises(),
	}
}

// filterLink is one button of a filter bar.
type filterLink struct {
	Name   string
	Href   string
	Active bool
}

type galleryCard struct {
	Item    gallery.Item
	Href    string
	Visible bool
}

type galleryViewer struct {
	Item      gallery.Item
	Position  int
	Total     int
	PrevHref  string
	NextHref  string
	CloseHref string
}

// galleryData is embedded in the page as JSON for the client script.
type galleryData struct {
	Items      []gallery.Item `json:"items"`
	Categories []string       `json:"categories"`
	State      gallery.State  `json:"state"`
}

func galleryHref(s gallery.State) string {
	return withQuery("/gallery", s.Query())
}

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// handleGallery renders the gallery for ?category=&item=. Every link on the
// page is the state reached by applying one browser operation, so the page
// is fully navigable without scripts.
func (s *Site) handleGallery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b := gallery.Restore(s.catalog, gallery.StateFromQuery(r.URL.Query()))
		state := b.State()
		snap := b.Snapshot()
		apply := func(a gallery.Action) string {
			return galleryHref(gallery.Apply(s.catalog, state, a))
		}

		filters := make([]filterLink, len(snap.Categories))
		for i, cat := range snap.Categories {
			filters[i] = filterLink{
				Name:   cat,
				Href:   apply(gallery.Action{Op: gallery.OpFilter, Category: cat}),
				Active: cat == snap.Category,
			}
		}

		inView := make(map[int]bool, len(snap.Items))
		for _, it := range snap.Items {
			inView[it.ID] = true
		}
		all := s.catalog.Items()
		cards := make([]galleryCard, len(all))
		for i, it := range all {
			cards[i] = galleryCard{
				Item:    it,
				Href:    apply(gallery.Action{Op: gallery.OpOpen, ID: it.ID}),
				Visible: inView[it.ID],
			}
		}

		var viewer *galleryViewer
		if snap.Viewer.Open && snap.Viewer.Item != nil {
			viewer = &galleryViewer{
				Item:      *snap.Viewer.Item,
				Position:  snap.Viewer.Position,
				Total:     snap.Viewer.Total,
				PrevHref:  apply(gallery.Action{Op: gallery.OpPrevious}),
				NextHref:  apply(gallery.Action{Op: gallery.OpNext}),
				CloseHref: apply(gallery.Action{Op: gallery.OpClose}),
			}
		}

		data := struct {
			Header      Header
			Filters     []filterLink
			Cards       []galleryCard
			Viewer      *galleryViewer
			CatalogJSON galleryData
			Stats       []content.Stat
		}{
			Header:      Header{"Our Work", "Project Gallery", "Browse our portfolio of completed projects. From residential driveways to commercial installations, see the quality that defines Blackstone."},
			Filters:     filters,
			Cards:       cards,
			Viewer:      viewer,
			CatalogJSON: galleryData{Items: all, Categories: snap.Categories, State: state},
			Stats:       content.Stats(),
		}
		s.render(w, http.StatusOK, "gallery", s.page(r.URL.Path, "Gallery", "Completed concrete projects across Pierce and King County.", data))
	}
}

type postCard struct {
	Post    blog.Post
	Visible bool
}

func (s *Site) handleBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		if !s.posts.HasCategory(category) {
			category = blog.AllCategories
		}

		cats := s.posts.Categories()
		filters := make([]filterLink, len(cats))
		for i, c := range cats {
			q := url.Values{}
			if c != blog.AllCategories {
				q.Set("category", c)
			}
			filters[i] = filterLink{Name: c, Href: withQuery("/blog", q), Active: c == category}
		}

		visible := map[string]bool{}
		for _, p := range s.posts.Regular(category) {
			visible[p.Slug] = true
		}
		var cards []postCard
		for _, p := range s.posts.Regular(blog.AllCategories) {
			cards = append(cards, postCard{Post: p, Visible: visible[p.Slug]})
		}

		data := struct {
			Header   Header
			Featured []blog.Post
			Filters  []filterLink
			Posts    []postCard
		}{
			Header:   Header{"Blog", "Concrete Insights", "Tips, guides, and insights from our team to help you make informed decisions about your concrete projects."},
			Featured: s.posts.Featured(),
			Filters:  filters,
			Posts:    cards,
		}
		s.render(w, http.StatusOK, "blog", s.page(r.URL.Path, "Blog", "Concrete tips, guides and comparisons.", data))
	}
}

func (s *Site) handlePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := s.posts.BySlug(chi.URLParam(r, "slug"))
		if !ok {
			s.handleNotFound()(w, r)
			return
		}
		data := struct{ Post blog.Post }{p}
		s.render(w, http.StatusOK, "post", s.page(r.URL.Path, p.Title, p.Excerpt, data))
	}
}

type faqQuestion struct {
	Index int
	Q     string
	A     string
	Open  bool
	Href  string
}

type faqPanel struct {
	Name      string
	Active    bool
	Questions []faqQuestion
}

// handleFAQ renders every tab so the client script can switch between them;
// only the active one is visible.
func (s *Site) handleFAQ() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats := content.FAQ()
		acc := faq.FromQuery(cats, r.URL.Query())

		var tabs []filterLink
		var panels []faqPanel
		for _, cat := range cats {
			active := cat.Name == acc.Category()
			tabs = append(tabs, filterLink{
				Name:   cat.Name,
				Href:   withQuery("/faq", acc.CategoryQuery(cat.Name)),
				Active: active,
			})

			panel := faqPanel{Name: cat.Name, Active: active}
			for i, q := range cat.Questions {
				var next url.Values
				if active {
					next = acc.ToggleQuery(i)
				} else {
					other := acc.Clone()
					other.SetCategory(cat.Name)
					other.Toggle(i)
					next = other.Query()
				}
				panel.Questions = append(panel.Questions, faqQuestion{
					Index: i,
					Q:     q.Q,
					A:     q.A,
					Open:  active && acc.IsOpen(i),
					Href:  withQuery("/faq", next),
				})
			}
			panels = append(panels, panel)
		}

		data := struct {
			Header Header
			Tabs   []filterLink
			Panels []faqPanel
		}{
			Header: Header{"FAQ", "Frequently Asked Questions", "Answers to the questions we hear most about concrete projects, timelines, pricing and care."},
			Tabs:   tabs,
			Panels: panels,
		}
		s.render(w, http.StatusOK, "faq", s.page(r.URL.Path, "FAQ", "Frequently asked questions about concrete work.", data))
	}
}

type serviceOption struct {
	Value    string
	Label    string
	Selected bool
}

type contactData struct {
	Header     Header
	Sent       bool
	Form       contact.Form
	Errors     contact.FieldErrors
	Options    []serviceOption
	QuickLinks []content.Card
}

func (s *Site) contactPage(r *http.Request, f contact.Form, errs contact.FieldErrors, sent bool) Page {
	var opts []serviceOption
	for _, o := range content.ServiceOptions() {
		opts = append(opts, serviceOption{Value: o.Value, Label: o.Label, Selected: o.Value == f.Service})
	}
	data := contactData{
		Header:     Header{"Contact Us", "Let's Build Together", "Ready to start your project? Get in touch for a free estimate. We're here to answer your questions and bring your vision to life."},
		Sent:       sent,
		Form:       f,
		Errors:     errs,
		Options:    opts,
		QuickLinks: content.QuickLinks(),
	}
	return s.page(r.URL.Path, "Contact", "Request a free concrete estimate.", data)
}

func (s *Site) handleContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sent := r.URL.Query().Get("sent") == "1"
		s.render(w, http.StatusOK, "contact", s.contactPage(r, contact.Form{}, nil, sent))
	}
}

// handleContactSubmit follows post/redirect/get: an accepted form redirects
// to the thank-you state, a rejected one is re-rendered with its errors.
func (s *Site) handleContactSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		f := contact.FormFromValues(r.PostForm)
		_, errs, err := s.intake.Submit(r.Context(), f, r.RemoteAddr)
		if err != nil {
			s.logger.Error("saving inquiry", zap.Error(err))
			http.Error(w, "could not save your request, please call us", http.StatusInternalServerError)
			return
		}
		if errs != nil {
			s.render(w, http.StatusUnprocessableEntity, "contact", s.contactPage(r, f, errs, false))
			return
		}
		http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
	}
}

func (s *Site) handleSearch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		data := struct {
			Header  Header
			Query   string
			Results []SearchEntry
		}{
			Header:  Header{"Search", "Find What You Need", ""},
			Query:   q,
			Results: Search(s.index, q, searchLimit),
		}
		s.render(w, http.StatusOK, "search", s.page(r.URL.Path, "Search", "Search the Blackstone Contractors website.", data))
	}
}

type searchResponse struct {
	Query   string        `json:"query"`
	Results []SearchEntry `json:"results"`
}

func (s *Site) handleSearchAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		results := Search(s.index, q, searchLimit)
		if results == nil {
			results = []SearchEntry{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(searchResponse{Query: q, Results: results})
	}
}

func (s *Site) handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, http.StatusNotFound, "not-found", s.page(r.URL.Path, "Page Not Found", "", nil))
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fmt.Fprint(w, body)
	}
}
