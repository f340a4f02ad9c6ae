package site

// layoutTemplate wraps every page. Pages define a "content" block.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{if .Title}}{{.Title}} | {{end}}{{.SiteName}}</title>
  <meta name="description" content="{{.Description}}">
  <link rel="stylesheet" href="/static/style.css">
</head>
<body{{if .Static}} data-static{{end}}>
  <header class="site-header" id="site-header">
    <div class="container header-inner">
      <a href="/" class="logo"><span class="logo-name">{{.Business.Name}}</span> <span class="logo-suffix">{{.Business.Suffix}}</span></a>
      <nav class="main-nav" id="main-nav" aria-label="Main">
        {{.Nav}}
      </nav>
      <a href="{{.Business.PhoneHref}}" class="btn btn-gold header-cta">{{.Business.Phone}}</a>
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
        <span></span><span></span><span></span>
      </button>
    </div>
  </header>
  <main>
    {{template "content" .}}
  </main>
  <footer class="site-footer">
    <div class="container footer-grid">
      <div class="footer-brand">
        <a href="/" class="logo"><span class="logo-name">{{.Business.Name}}</span> <span class="logo-suffix">{{.Business.Suffix}}</span></a>
        <p>{{.Business.Tagline}}. Quality concrete work serving {{.Business.City}} and beyond.</p>
      </div>
      {{range .Footer}}
      <div class="footer-col">
        <h4>{{.Title}}</h4>
        <ul>{{range .Links}}<li><a href="{{.Href}}">{{.Label}}</a></li>{{end}}</ul>
      </div>
      {{end}}
      <div class="footer-col">
        <h4>Contact</h4>
        <ul>
          <li><a href="{{.Business.PhoneHref}}">{{.Business.Phone}}</a></li>
          <li><a href="mailto:{{.Business.Email}}">{{.Business.Email}}</a></li>
          <li>{{.Business.City}}</li>
          <li>{{.Business.Hours}}</li>
        </ul>
      </div>
    </div>
    <div class="container footer-bottom">
      <p>&copy; {{.Year}} {{.Business.Name}} {{.Business.Suffix}}. All rights reserved.</p>
      <p>Licensed &amp; Insured</p>
    </div>
  </footer>
  <script src="/static/site.js"></script>
</body>
</html>{{end}}`

// pageTemplates maps page names to their "content" block.
var pageTemplates = map[string]string{
	"home":                homeTemplate,
	"about":               aboutTemplate,
	"why-choose-us":       whyTemplate,
	"services":            servicesTemplate,
	"installations":       installationsTemplate,
	"additional-services": additionalTemplate,
	"gallery":             galleryTemplate,
	"blog":                blogTemplate,
	"post":                postTemplate,
	"faq":                 faqTemplate,
	"contact":             contactTemplate,
	"search":              searchTemplate,
	"not-found":           notFoundTemplate,
}

const pageHeaderBlock = `{{define "page-header"}}
<section class="page-header">
  <div class="container">
    <p class="eyebrow" data-reveal>{{.Eyebrow}}</p>
    <h1 data-reveal data-reveal-delay="{{delay 1}}">{{.Heading}}</h1>
    {{if .Lead}}<p class="lead" data-reveal data-reveal-delay="{{delay 2}}">{{.Lead}}</p>{{end}}
  </div>
</section>
{{end}}
{{define "cta"}}
<section class="cta-band">
  <div class="container cta-inner" data-reveal>
    <h2>Ready to Start Your Project?</h2>
    <p>Get a free, no-obligation estimate from Blackstone Contractors.</p>
    <div class="cta-actions">
      <a href="/contact" class="btn btn-gold">Get Free Estimate</a>
      <a href="{{.PhoneHref}}" class="btn btn-outline">Call {{.Phone}}</a>
    </div>
  </div>
</section>
{{end}}
{{define "stats"}}
<div class="stats-grid">
  {{range $i, $s := .}}
  <div class="stat" data-reveal data-reveal-delay="{{delay $i}}">
    <span class="stat-value">{{$s.Value}}</span>
    <span class="stat-label">{{$s.Label}}</span>
  </div>
  {{end}}
</div>
{{end}}`

const homeTemplate = `{{define "content"}}
<section class="hero">
  <div class="container hero-inner">
    <p class="eyebrow" data-reveal>{{.Business.City}} &middot; {{.Business.ServiceArea}}</p>
    <h1 data-reveal data-reveal-delay="{{delay 1}}">{{.Business.Tagline}}</h1>
    <p class="lead" data-reveal data-reveal-delay="{{delay 2}}">Expert concrete flatwork, stamped finishes, driveways and patios built to last through every Pacific Northwest season.</p>
    <div class="hero-actions" data-reveal data-reveal-delay="{{delay 3}}">
      <a href="/contact" class="btn btn-gold">Get Free Estimate</a>
      <a href="/gallery" class="btn btn-outline">View Our Work</a>
    </div>
  </div>
</section>
<section class="section stats-band">
  <div class="container">{{template "stats" .Data.Stats}}</div>
</section>
<section class="section">
  <div class="container">
    <div class="section-head" data-reveal>
      <p class="eyebrow">What We Do</p>
      <h2>Our Services</h2>
    </div>
    <div class="card-grid">
      {{range $i, $c := .Data.Services}}
      <a href="{{$c.Href}}" class="card" data-reveal data-reveal-delay="{{delay $i}}">
        <div class="placeholder" aria-hidden="true"></div>
        <h3>{{$c.Title}}</h3>
        <p>{{$c.Description}}</p>
        <span class="card-link">Learn more &rarr;</span>
      </a>
      {{end}}
    </div>
  </div>
</section>
<section class="section section-dark">
  <div class="container">
    <div class="section-head" data-reveal>
      <p class="eyebrow">Why Blackstone</p>
      <h2>The Blackstone Difference</h2>
    </div>
    <div class="feature-grid">
      {{range $i, $f := .Data.Differences}}
      <div class="feature" data-reveal data-reveal-delay="{{delay $i}}">
        <h3>{{$f.Title}}</h3>
        <p>{{$f.Description}}</p>
      </div>
      {{end}}
    </div>
  </div>
</section>
<section class="section">
  <div class="container">
    <div class="section-head" data-reveal>
      <p class="eyebrow">How It Works</p>
      <h2>Our Process</h2>
    </div>
    <ol class="process">
      {{range $i, $s := .Data.Process}}
      <li data-reveal data-reveal-delay="{{delay $i}}"><span class="step-number">{{$s.Number}}</span><h3>{{$s.Title}}</h3><p>{{$s.Description}}</p></li>
      {{end}}
    </ol>
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const aboutTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container split">
    <div data-reveal>
      <h2>Built on Experience</h2>
      <p>Blackstone Contractors LLC is an owner-operated concrete company based in {{.Business.City}}. Our owner brings more than nine years of hands-on concrete experience to every job, from a single walkway to a full commercial slab.</p>
      <p>We keep our crew small and our standards high. When you call, you talk to the person who will be on site pouring your concrete.</p>
    </div>
    <div class="placeholder tall" aria-hidden="true" data-reveal data-reveal-delay="{{delay 1}}"></div>
  </div>
</section>
<section class="section stats-band">
  <div class="container">{{template "stats" .Data.Stats}}</div>
</section>
<section class="section">
  <div class="container">
    <div class="section-head" data-reveal><p class="eyebrow">What Drives Us</p><h2>Our Values</h2></div>
    <div class="feature-grid">
      {{range $i, $f := .Data.Values}}
      <div class="feature" data-reveal data-reveal-delay="{{delay $i}}"><h3>{{$f.Title}}</h3><p>{{$f.Description}}</p></div>
      {{end}}
    </div>
  </div>
</section>
<section class="section section-dark">
  <div class="container">
    <div class="section-head" data-reveal>
      <p class="eyebrow">Where We Work</p>
      <h2>Service Area</h2>
      <p>{{.Business.ServiceArea}} from {{.Business.City}}, including {{join .Business.Counties " and "}}.</p>
    </div>
    <ul class="tag-list">
      {{range $i, $a := .Data.Areas}}<li data-reveal data-reveal-delay="{{delay $i}}">{{$a}}</li>{{end}}
    </ul>
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const whyTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container feature-grid two">
    {{range $i, $f := .Data.Reasons}}
    <div class="feature large" data-reveal data-reveal-delay="{{delay $i}}"><h3>{{$f.Title}}</h3><p>{{$f.Description}}</p></div>
    {{end}}
  </div>
</section>
<section class="section section-dark">
  <div class="container">
    <div class="section-head" data-reveal><p class="eyebrow">Step by Step</p><h2>Our Process</h2></div>
    <ol class="process">
      {{range $i, $s := .Data.Process}}
      <li data-reveal data-reveal-delay="{{delay $i}}"><span class="step-number">{{$s.Number}}</span><h3>{{$s.Title}}</h3><p>{{$s.Description}}</p></li>
      {{end}}
    </ol>
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const servicesTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container service-list">
    {{range $i, $s := .Data.Services}}
    <article class="service" id="{{$s.ID}}" data-reveal>
      <div class="placeholder" aria-hidden="true"></div>
      <div>
        <h2>{{$s.Title}}</h2>
        <p>{{$s.Description}}</p>
        <ul class="check-list">{{range $s.Details}}<li>{{.}}</li>{{end}}</ul>
      </div>
    </article>
    {{end}}
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const installationsTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container service-list">
    {{range $i, $in := .Data.Installations}}
    <article class="service" id="{{$in.ID}}" data-reveal>
      <div class="placeholder" aria-hidden="true"></div>
      <div>
        <p class="eyebrow">{{$in.Subtitle}}</p>
        <h2>{{$in.Title}}</h2>
        <p>{{$in.Description}}</p>
        <ul class="check-list">{{range $in.Features}}<li>{{.}}</li>{{end}}</ul>
        <p class="finish-options"><strong>Finish options:</strong> {{join $in.FinishOptions ", "}}</p>
      </div>
    </article>
    {{end}}
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const additionalTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
{{range $i, $a := .Data.Services}}
<section class="section{{if $i}} section-alt{{end}}" id="{{$a.ID}}">
  <div class="container split">
    <div data-reveal>
      <h2>{{$a.Title}}</h2>
      <p>{{$a.Description}}</p>
      <h3>{{$a.ListTitle}}</h3>
      <ul class="check-list columns">{{range $a.Items}}<li>{{.}}</li>{{end}}</ul>
    </div>
    <div class="panel" data-reveal data-reveal-delay="{{delay 1}}">
      <h3>{{$a.NotesTitle}}</h3>
      <ol>{{range $a.Notes}}<li>{{.}}</li>{{end}}</ol>
      <a href="/contact" class="btn btn-gold">{{$a.CTA}}</a>
    </div>
  </div>
</section>
{{end}}
<section class="section section-dark">
  <div class="container">
    <div class="section-head" data-reveal><h2>Why Choose Blackstone</h2></div>
    <div class="feature-grid three">
      {{range $i, $f := .Data.Promises}}
      <div class="feature" data-reveal data-reveal-delay="{{delay $i}}"><h3>{{$f.Title}}</h3><p>{{$f.Description}}</p></div>
      {{end}}
    </div>
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const galleryTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section gallery" id="gallery" data-ws="/ws/gallery">
  <div class="container">
    <div class="filter-bar" role="tablist">
      {{range .Data.Filters}}
      <a href="{{.Href}}" class="filter-btn{{if .Active}} active{{end}}" data-gallery-filter="{{.Name}}" role="tab" aria-selected="{{.Active}}">{{.Name}}</a>
      {{end}}
    </div>
    <div class="gallery-grid">
      {{range $i, $c := .Data.Cards}}
      <a href="{{$c.Href}}" class="gallery-card" data-gallery-open="{{$c.Item.ID}}" data-category="{{$c.Item.Category}}"{{if not $c.Visible}} hidden{{end}}>
        <div class="placeholder" aria-hidden="true"></div>
        <div class="gallery-caption">
          <span class="gallery-category">{{$c.Item.Category}}</span>
          <h3>{{$c.Item.Title}}</h3>
          <p>{{$c.Item.Location}}</p>
        </div>
      </a>
      {{end}}
    </div>
  </div>
  <div class="lightbox" id="lightbox" role="dialog" aria-modal="true" aria-label="Project viewer"{{if not .Data.Viewer}} hidden{{end}}>
    {{with .Data.Viewer}}
    <a href="{{.CloseHref}}" class="lightbox-close" data-gallery-op="close" aria-label="Close">&times;</a>
    <a href="{{.PrevHref}}" class="lightbox-nav prev" data-gallery-op="previous" aria-label="Previous">&lsaquo;</a>
    <figure class="lightbox-body">
      <div class="placeholder wide" aria-hidden="true"></div>
      <figcaption>
        <span class="gallery-category" data-field="category">{{.Item.Category}}</span>
        <h3 data-field="title">{{.Item.Title}}</h3>
        <p data-field="location">{{.Item.Location}}</p>
        <p class="lightbox-count" data-field="position">{{.Position}} / {{.Total}}</p>
      </figcaption>
    </figure>
    <a href="{{.NextHref}}" class="lightbox-nav next" data-gallery-op="next" aria-label="Next">&rsaquo;</a>
    {{else}}
    <a href="/gallery" class="lightbox-close" data-gallery-op="close" aria-label="Close">&times;</a>
    <a href="/gallery" class="lightbox-nav prev" data-gallery-op="previous" aria-label="Previous">&lsaquo;</a>
    <figure class="lightbox-body">
      <div class="placeholder wide" aria-hidden="true"></div>
      <figcaption>
        <span class="gallery-category" data-field="category"></span>
        <h3 data-field="title"></h3>
        <p data-field="location"></p>
        <p class="lightbox-count" data-field="position"></p>
      </figcaption>
    </figure>
    <a href="/gallery" class="lightbox-nav next" data-gallery-op="next" aria-label="Next">&rsaquo;</a>
    {{end}}
  </div>
  <script type="application/json" id="gallery-data">{{.Data.CatalogJSON}}</script>
</section>
<section class="section stats-band">
  <div class="container">{{template "stats" .Data.Stats}}</div>
</section>
{{template "cta" .Business}}
{{end}}`

const blogTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
{{if .Data.Featured}}
<section class="section">
  <div class="container">
    <div class="section-head" data-reveal><p class="eyebrow">Featured</p><h2>Featured Articles</h2></div>
    <div class="card-grid two">
      {{range $i, $p := .Data.Featured}}
      <article class="post-card featured" data-reveal data-reveal-delay="{{delay $i}}">
        <a href="/blog/{{$p.Slug}}">
          <div class="placeholder" aria-hidden="true"></div>
          <p class="post-meta"><span class="post-category">{{$p.Category}}</span> &middot; {{$p.DisplayDate}} &middot; {{$p.ReadTime}}</p>
          <h3>{{$p.Title}}</h3>
          <p>{{$p.Excerpt}}</p>
        </a>
      </article>
      {{end}}
    </div>
  </div>
</section>
{{end}}
<section class="section section-alt">
  <div class="container">
    <div class="filter-bar">
      {{range .Data.Filters}}
      <a href="{{.Href}}" class="filter-btn{{if .Active}} active{{end}}" data-blog-filter="{{.Name}}">{{.Name}}</a>
      {{end}}
    </div>
    <div class="card-grid three">
      {{range $i, $c := .Data.Posts}}
      <article class="post-card" data-category="{{$c.Post.Category}}"{{if not $c.Visible}} hidden{{end}}>
        <a href="/blog/{{$c.Post.Slug}}">
          <p class="post-meta"><span class="post-category">{{$c.Post.Category}}</span> &middot; {{$c.Post.DisplayDate}}</p>
          <h3>{{$c.Post.Title}}</h3>
          <p>{{$c.Post.Excerpt}}</p>
          <span class="card-link">{{$c.Post.ReadTime}} &rarr;</span>
        </a>
      </article>
      {{end}}
    </div>
  </div>
</section>
{{template "cta" .Business}}
{{end}}`

const postTemplate = `{{define "content"}}
<article class="post">
  <header class="page-header">
    <div class="container narrow">
      <p class="eyebrow"><a href="/blog?category={{.Data.Post.Category}}">{{.Data.Post.Category}}</a></p>
      <h1>{{.Data.Post.Title}}</h1>
      <p class="post-meta">{{.Data.Post.DisplayDate}} &middot; {{.Data.Post.ReadTime}}</p>
    </div>
  </header>
  <div class="container narrow post-body">
    {{.Data.Post.Body}}
    <p><a href="/blog">&larr; Back to all articles</a></p>
  </div>
</article>
{{template "cta" .Business}}
{{end}}`

const faqTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section faq" id="faq">
  <div class="container narrow">
    <div class="filter-bar" role="tablist">
      {{range .Data.Tabs}}
      <a href="{{.Href}}" class="filter-btn{{if .Active}} active{{end}}" data-faq-category="{{.Name}}" role="tab" aria-selected="{{.Active}}">{{.Name}}</a>
      {{end}}
    </div>
    {{range .Data.Panels}}
    <div class="faq-panel" data-faq-panel="{{.Name}}"{{if not .Active}} hidden{{end}}>
      {{range .Questions}}
      <div class="faq-item{{if .Open}} open{{end}}">
        <a href="{{.Href}}" class="faq-question" data-faq-toggle="{{.Index}}" aria-expanded="{{.Open}}">{{.Q}}<span class="faq-icon" aria-hidden="true">+</span></a>
        <div class="faq-answer"{{if not .Open}} hidden{{end}}><p>{{.A}}</p></div>
      </div>
      {{end}}
    </div>
    {{end}}
    <div class="panel center" data-reveal>
      <h3>Still have questions?</h3>
      <p>Give us a call or send a message. We are happy to help.</p>
      <a href="/contact" class="btn btn-gold">Contact Us</a>
    </div>
  </div>
</section>
{{end}}`

const contactTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container contact-grid">
    <div class="contact-form" data-reveal>
      <div class="thank-you" id="thank-you"{{if not .Data.Sent}} hidden{{end}}>
        <h2>Thank You!</h2>
        <p>We've received your request and will contact you within 24 hours to discuss your project.</p>
        <a href="/contact" class="btn btn-outline" id="send-another">Send Another Message</a>
      </div>
      {{if not .Data.Sent}}
      <form method="post" action="/contact" id="contact-form" novalidate>
        <h2>Request a Free Estimate</h2>
        {{with .Data.Errors}}<p class="form-error" role="alert">Please correct the highlighted fields.</p>{{end}}
        <div class="field{{if index .Data.Errors "name"}} invalid{{end}}">
          <label for="name">Full Name *</label>
          <input id="name" name="name" type="text" required value="{{.Data.Form.Name}}">
          {{with index .Data.Errors "name"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <div class="field-row">
          <div class="field{{if index .Data.Errors "email"}} invalid{{end}}">
            <label for="email">Email *</label>
            <input id="email" name="email" type="email" required value="{{.Data.Form.Email}}">
            {{with index .Data.Errors "email"}}<span class="field-error">{{.}}</span>{{end}}
          </div>
          <div class="field{{if index .Data.Errors "phone"}} invalid{{end}}">
            <label for="phone">Phone *</label>
            <input id="phone" name="phone" type="tel" required value="{{.Data.Form.Phone}}">
            {{with index .Data.Errors "phone"}}<span class="field-error">{{.}}</span>{{end}}
          </div>
        </div>
        <div class="field{{if index .Data.Errors "service"}} invalid{{end}}">
          <label for="service">Service Needed</label>
          <select id="service" name="service">
            <option value="">Select a service</option>
            {{range .Data.Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
          </select>
          {{with index .Data.Errors "service"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <div class="field{{if index .Data.Errors "message"}} invalid{{end}}">
          <label for="message">Project Details *</label>
          <textarea id="message" name="message" rows="5" required>{{.Data.Form.Message}}</textarea>
          {{with index .Data.Errors "message"}}<span class="field-error">{{.}}</span>{{end}}
        </div>
        <button type="submit" class="btn btn-gold">Send Message</button>
      </form>
      {{end}}
    </div>
    <aside class="contact-info" data-reveal data-reveal-delay="{{delay 1}}">
      <h2>Contact Information</h2>
      <dl>
        <dt>Phone</dt><dd><a href="{{.Business.PhoneHref}}">{{.Business.Phone}}</a></dd>
        <dt>Email</dt><dd><a href="mailto:{{.Business.Email}}">{{.Business.Email}}</a></dd>
        <dt>Location</dt><dd>{{.Business.City}}<br>{{.Business.ServiceArea}}</dd>
        <dt>Hours</dt><dd>{{.Business.HoursDays}}<br>{{.Business.HoursTime}}</dd>
      </dl>
    </aside>
  </div>
</section>
<section class="section section-alt">
  <div class="container">
    <div class="section-head" data-reveal><h2>Explore Our Services</h2></div>
    <div class="card-grid three">
      {{range $i, $c := .Data.QuickLinks}}
      <a href="{{$c.Href}}" class="card" data-reveal data-reveal-delay="{{delay $i}}"><h3>{{$c.Title}}</h3><p>{{$c.Description}}</p></a>
      {{end}}
    </div>
  </div>
</section>
{{end}}`

const searchTemplate = `{{define "content"}}
{{template "page-header" .Data.Header}}
<section class="section">
  <div class="container narrow">
    <form method="get" action="/search" class="search-form">
      <input type="search" name="q" value="{{.Data.Query}}" placeholder="Search services, articles and FAQs" aria-label="Search">
      <button type="submit" class="btn btn-gold">Search</button>
    </form>
    {{if .Data.Query}}
    <p class="search-count">{{len .Data.Results}} result{{if ne (len .Data.Results) 1}}s{{end}} for &ldquo;{{.Data.Query}}&rdquo;</p>
    <ul class="search-results">
      {{range .Data.Results}}
      <li><a href="{{.Path}}"><span class="post-category">{{.Kind}}</span><h3>{{.Title}}</h3><p>{{.Summary}}</p></a></li>
      {{end}}
    </ul>
    {{end}}
  </div>
</section>
{{end}}`

const notFoundTemplate = `{{define "content"}}
<section class="page-header not-found">
  <div class="container">
    <p class="eyebrow">404</p>
    <h1>Page Not Found</h1>
    <p class="lead">The page you are looking for does not exist or has moved.</p>
    <a href="/" class="btn btn-gold">Back to Home</a>
  </div>
</section>
{{end}}`
