package site

// cssContent is the full stylesheet for the site.
const cssContent = `/* ============ Variables ============ */
:root {
  --color-black: #0d0d0d;
  --color-charcoal: #1a1a1a;
  --color-slate: #2b2b2b;
  --color-gray: #6b6b6b;
  --color-light: #f5f4f0;
  --color-white: #ffffff;
  --color-gold: #c9a227;
  --color-gold-dark: #a8861c;
  --font-sans: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  --font-display: "Oswald", "Arial Narrow", sans-serif;
  --radius: 4px;
  --header-h: 76px;
  --reveal-distance: 24px;
  --reveal-duration: 0.7s;
}

/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: var(--font-sans);
  color: var(--color-charcoal);
  background: var(--color-white);
  line-height: 1.6;
}
a { color: inherit; text-decoration: none; }
img { max-width: 100%; display: block; }
h1, h2, h3, h4 { font-family: var(--font-display); line-height: 1.15; margin: 0 0 0.5em; letter-spacing: 0.01em; }
h1 { font-size: clamp(2.4rem, 5vw, 4rem); text-transform: uppercase; }
h2 { font-size: clamp(1.8rem, 3.5vw, 2.6rem); }
h3 { font-size: 1.25rem; }
p { margin: 0 0 1em; }
[hidden] { display: none !important; }

.container { width: min(1200px, 100% - 3rem); margin-inline: auto; }
.container.narrow { width: min(820px, 100% - 3rem); }
.section { padding: 6rem 0; }
.section-alt { background: var(--color-light); }
.section-dark { background: var(--color-charcoal); color: var(--color-white); }
.section-head { max-width: 640px; margin-bottom: 3rem; }
.eyebrow { color: var(--color-gold); text-transform: uppercase; letter-spacing: 0.2em; font-size: 0.8rem; font-weight: 600; }
.lead { font-size: 1.2rem; color: var(--color-gray); max-width: 640px; }
.center { text-align: center; }

/* ============ Buttons ============ */
.btn {
  display: inline-block;
  padding: 0.85rem 1.8rem;
  border-radius: var(--radius);
  font-weight: 600;
  text-transform: uppercase;
  letter-spacing: 0.08em;
  font-size: 0.85rem;
  border: 2px solid transparent;
  cursor: pointer;
  transition: background 0.2s, color 0.2s, border-color 0.2s;
}
.btn-gold { background: var(--color-gold); color: var(--color-black); }
.btn-gold:hover { background: var(--color-gold-dark); }
.btn-outline { border-color: currentColor; background: transparent; }
.btn-outline:hover { border-color: var(--color-gold); color: var(--color-gold); }

/* ============ Header ============ */
.site-header {
  position: fixed; inset: 0 0 auto 0; z-index: 50;
  height: var(--header-h);
  background: rgba(13, 13, 13, 0.85);
  color: var(--color-white);
  backdrop-filter: blur(8px);
  transition: background 0.3s, box-shadow 0.3s;
}
.site-header.scrolled { background: var(--color-black); box-shadow: 0 2px 12px rgba(0, 0, 0, 0.4); }
.header-inner { display: flex; align-items: center; justify-content: space-between; height: 100%; gap: 2rem; }
.logo { font-family: var(--font-display); font-size: 1.4rem; text-transform: uppercase; white-space: nowrap; }
.logo-name { color: var(--color-gold); font-weight: 700; }
.logo-suffix { font-size: 0.8rem; letter-spacing: 0.15em; }
.nav-list { list-style: none; display: flex; gap: 1.5rem; margin: 0; padding: 0; }
.nav-item > a, .dropdown-toggle {
  font: inherit; color: inherit; background: none; border: 0; cursor: pointer;
  font-size: 0.9rem; padding: 0.5rem 0; border-bottom: 2px solid transparent;
}
.nav-item.active > a, .nav-item.active > .dropdown-toggle { color: var(--color-gold); border-bottom-color: var(--color-gold); }
.dropdown { position: relative; }
.dropdown-menu {
  position: absolute; top: 100%; left: -1rem; min-width: 220px;
  list-style: none; margin: 0; padding: 0.5rem 0;
  background: var(--color-black); border-top: 2px solid var(--color-gold);
  opacity: 0; visibility: hidden; transform: translateY(8px);
  transition: opacity 0.2s, transform 0.2s, visibility 0.2s;
}
.dropdown:hover .dropdown-menu, .dropdown.open .dropdown-menu { opacity: 1; visibility: visible; transform: none; }
.dropdown-menu a { display: block; padding: 0.5rem 1rem; }
.dropdown-menu a:hover, .dropdown-menu a.active { color: var(--color-gold); }
.menu-toggle { display: none; background: none; border: 0; cursor: pointer; padding: 0.5rem; }
.menu-toggle span { display: block; width: 24px; height: 2px; margin: 5px 0; background: var(--color-white); }

/* ============ Hero and page headers ============ */
.hero {
  min-height: 92vh; display: flex; align-items: center;
  padding-top: var(--header-h);
  background: linear-gradient(135deg, var(--color-black) 0%, var(--color-slate) 100%);
  color: var(--color-white);
}
.hero .lead { color: #cfcfcf; }
.hero-actions, .cta-actions { display: flex; gap: 1rem; flex-wrap: wrap; margin-top: 2rem; }
.page-header {
  padding: calc(var(--header-h) + 5rem) 0 4rem;
  background: var(--color-black);
  color: var(--color-white);
}
.page-header .lead { color: #cfcfcf; }
.page-header a:hover { color: var(--color-gold); }

/* ============ Grids and cards ============ */
.stats-band { background: var(--color-gold); padding: 3rem 0; color: var(--color-black); }
.stats-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; text-align: center; }
.stat-value { display: block; font-family: var(--font-display); font-size: 2.8rem; font-weight: 700; }
.stat-label { text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.8rem; }
.card-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 1.5rem; }
.card-grid.two { grid-template-columns: repeat(2, 1fr); }
.card-grid.three { grid-template-columns: repeat(3, 1fr); }
.card { display: block; padding: 1.5rem; background: var(--color-white); border: 1px solid #e6e4de; border-radius: var(--radius); transition: transform 0.2s, box-shadow 0.2s; }
.card:hover { transform: translateY(-4px); box-shadow: 0 12px 30px rgba(0, 0, 0, 0.08); }
.card-link { color: var(--color-gold-dark); font-weight: 600; font-size: 0.85rem; }
.placeholder { aspect-ratio: 4 / 3; background: repeating-linear-gradient(45deg, #d9d6cf, #d9d6cf 10px, #cfccc4 10px, #cfccc4 20px); border-radius: var(--radius); margin-bottom: 1rem; }
.placeholder.tall { aspect-ratio: 3 / 4; }
.placeholder.wide { aspect-ratio: 16 / 9; margin: 0; }
.feature-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; }
.feature-grid.two { grid-template-columns: repeat(2, 1fr); }
.feature-grid.three { grid-template-columns: repeat(3, 1fr); }
.feature { border-top: 3px solid var(--color-gold); padding-top: 1.25rem; }
.feature.large h3 { font-size: 1.6rem; }
.section-dark .feature p { color: #bdbdbd; }
.process { list-style: none; margin: 0; padding: 0; display: grid; grid-template-columns: repeat(4, 1fr); gap: 2rem; }
.step-number { display: block; font-family: var(--font-display); font-size: 3rem; color: var(--color-gold); }
.split { display: grid; grid-template-columns: 1fr 1fr; gap: 4rem; align-items: center; }
.panel { background: var(--color-light); padding: 2rem; border-left: 4px solid var(--color-gold); border-radius: var(--radius); }
.section-dark .panel { background: var(--color-slate); }
.check-list { list-style: none; padding: 0; margin: 0 0 1rem; }
.check-list li { padding-left: 1.6rem; position: relative; margin-bottom: 0.4rem; }
.check-list li::before { content: "\2713"; position: absolute; left: 0; color: var(--color-gold); font-weight: 700; }
.check-list.columns { columns: 2; }
.tag-list { list-style: none; padding: 0; display: flex; flex-wrap: wrap; gap: 0.75rem; }
.tag-list li { border: 1px solid var(--color-gold); padding: 0.4rem 1rem; border-radius: 999px; }
.service-list { display: grid; gap: 4rem; }
.service { display: grid; grid-template-columns: 2fr 3fr; gap: 3rem; align-items: start; scroll-margin-top: calc(var(--header-h) + 1rem); }
.finish-options { color: var(--color-gray); }

/* ============ CTA ============ */
.cta-band { background: var(--color-slate); color: var(--color-white); padding: 5rem 0; text-align: center; }
.cta-inner { display: flex; flex-direction: column; align-items: center; }

/* ============ Filters ============ */
.filter-bar { display: flex; flex-wrap: wrap; gap: 0.75rem; margin-bottom: 2.5rem; }
.filter-btn { padding: 0.55rem 1.3rem; border: 1px solid #cfccc4; border-radius: 999px; font-size: 0.85rem; transition: background 0.2s, color 0.2s; }
.filter-btn:hover { border-color: var(--color-gold); }
.filter-btn.active { background: var(--color-black); border-color: var(--color-black); color: var(--color-white); }

/* ============ Gallery ============ */
.gallery-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1.5rem; }
.gallery-card { position: relative; display: block; overflow: hidden; border-radius: var(--radius); cursor: zoom-in; }
.gallery-card .placeholder { margin: 0; transition: transform 0.4s; }
.gallery-card:hover .placeholder { transform: scale(1.04); }
.gallery-caption { position: absolute; inset: auto 0 0 0; padding: 1.25rem; color: var(--color-white); background: linear-gradient(transparent, rgba(0, 0, 0, 0.8)); }
.gallery-caption p { margin: 0; font-size: 0.85rem; color: #ddd; }
.gallery-category { color: var(--color-gold); text-transform: uppercase; font-size: 0.75rem; letter-spacing: 0.15em; }
.lightbox {
  position: fixed; inset: 0; z-index: 100;
  display: flex; align-items: center; justify-content: center; gap: 1rem;
  background: rgba(0, 0, 0, 0.92); color: var(--color-white);
}
.lightbox-body { width: min(900px, 80vw); margin: 0; }
.lightbox-body figcaption { padding-top: 1rem; }
.lightbox-close { position: absolute; top: 1.5rem; right: 2rem; font-size: 2.5rem; line-height: 1; }
.lightbox-nav { font-size: 3.5rem; line-height: 1; padding: 1rem; user-select: none; }
.lightbox-nav:hover, .lightbox-close:hover { color: var(--color-gold); }
.lightbox-count { color: #aaa; font-size: 0.85rem; }
body.lightbox-open { overflow: hidden; }

/* ============ Blog ============ */
.post-card a { display: block; height: 100%; padding: 1.5rem; background: var(--color-white); border-radius: var(--radius); }
.post-card.featured a { padding: 0 0 1.5rem; background: none; }
.post-meta { font-size: 0.8rem; color: var(--color-gray); }
.post-category { color: var(--color-gold-dark); font-weight: 600; text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.75rem; }
.post-body { padding: 4rem 0; font-size: 1.05rem; }
.post-body h2 { margin-top: 2rem; }
.post-body table { width: 100%; border-collapse: collapse; margin: 1.5rem 0; }
.post-body th, .post-body td { text-align: left; padding: 0.6rem; border-bottom: 1px solid #e6e4de; }
.post-body a { color: var(--color-gold-dark); text-decoration: underline; }

/* ============ FAQ ============ */
.faq-item { border-bottom: 1px solid #e6e4de; }
.faq-question { display: flex; justify-content: space-between; align-items: center; gap: 1rem; padding: 1.25rem 0; font-weight: 600; font-size: 1.05rem; }
.faq-icon { color: var(--color-gold); font-size: 1.5rem; transition: transform 0.2s; }
.faq-item.open .faq-icon { transform: rotate(45deg); }
.faq-answer p { color: var(--color-gray); }
.faq .panel { margin-top: 3rem; }

/* ============ Contact ============ */
.contact-grid { display: grid; grid-template-columns: 3fr 2fr; gap: 4rem; }
.field { display: flex; flex-direction: column; margin-bottom: 1.25rem; }
.field-row { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.field label { font-weight: 600; font-size: 0.85rem; margin-bottom: 0.35rem; }
.field input, .field select, .field textarea { font: inherit; padding: 0.75rem; border: 1px solid #cfccc4; border-radius: var(--radius); }
.field input:focus, .field select:focus, .field textarea:focus { outline: 2px solid var(--color-gold); border-color: transparent; }
.field.invalid input, .field.invalid select, .field.invalid textarea { border-color: #b3261e; }
.field-error, .form-error { color: #b3261e; font-size: 0.85rem; }
.thank-you { padding: 3rem; background: var(--color-light); border-left: 4px solid var(--color-gold); }
.contact-info dl { margin: 0; }
.contact-info dt { text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.75rem; color: var(--color-gold-dark); margin-top: 1.25rem; }
.contact-info dd { margin: 0.25rem 0 0; }

/* ============ Search ============ */
.search-form { display: flex; gap: 0.75rem; margin-bottom: 2rem; }
.search-form input { flex: 1; font: inherit; padding: 0.75rem; border: 1px solid #cfccc4; border-radius: var(--radius); }
.search-results { list-style: none; padding: 0; }
.search-results li { border-bottom: 1px solid #e6e4de; padding: 1rem 0; }

/* ============ Footer ============ */
.site-footer { background: var(--color-black); color: #bdbdbd; padding: 4rem 0 2rem; font-size: 0.9rem; }
.footer-grid { display: grid; grid-template-columns: 2fr 1fr 1fr 1.5fr; gap: 2rem; }
.footer-col h4 { color: var(--color-white); text-transform: uppercase; letter-spacing: 0.1em; font-size: 0.85rem; }
.footer-col ul { list-style: none; padding: 0; margin: 0; }
.footer-col li { margin-bottom: 0.4rem; }
.footer-col a:hover { color: var(--color-gold); }
.footer-bottom { display: flex; justify-content: space-between; border-top: 1px solid #333; margin-top: 3rem; padding-top: 1.5rem; font-size: 0.8rem; }

/* ============ Reveal ============ */
[data-reveal] {
  opacity: 0;
  transform: translateY(var(--reveal-distance));
  transition: opacity var(--reveal-duration) ease-out, transform var(--reveal-duration) ease-out;
}
[data-reveal].revealed { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  [data-reveal] { opacity: 1; transform: none; transition: none; }
}

/* ============ Responsive ============ */
@media (max-width: 1024px) {
  .card-grid, .feature-grid, .process, .stats-grid { grid-template-columns: repeat(2, 1fr); }
  .gallery-grid { grid-template-columns: repeat(2, 1fr); }
  .footer-grid { grid-template-columns: 1fr 1fr; }
}
@media (max-width: 860px) {
  .menu-toggle { display: block; }
  .header-cta { display: none; }
  .main-nav {
    position: fixed; inset: var(--header-h) 0 auto 0;
    background: var(--color-black); padding: 1rem 1.5rem 2rem;
    transform: translateY(-120%); transition: transform 0.3s;
  }
  .main-nav.open { transform: none; }
  .nav-list { flex-direction: column; gap: 0.5rem; }
  .dropdown-menu { position: static; opacity: 1; visibility: visible; transform: none; display: none; border: 0; }
  .dropdown.open .dropdown-menu { display: block; }
  .split, .service, .contact-grid, .field-row { grid-template-columns: 1fr; }
  .card-grid.two, .card-grid.three, .feature-grid.two, .feature-grid.three { grid-template-columns: 1fr; }
}
@media (max-width: 560px) {
  .card-grid, .feature-grid, .process, .gallery-grid, .footer-grid { grid-template-columns: 1fr; }
  .lightbox-nav { position: absolute; bottom: 1rem; }
  .lightbox-nav.prev { left: 1rem; }
  .lightbox-nav.next { right: 1rem; }
}
`

// jsContent is the client script. Every feature works without it through
// plain links and form posts; the script only avoids full page loads.
const jsContent = `(function() {
  'use strict';

  var isStatic = document.body.hasAttribute('data-static');

  function queryString(params) {
    var q = new URLSearchParams();
    Object.keys(params).forEach(function(k) {
      var v = params[k];
      if (Array.isArray(v)) {
        v.forEach(function(x) { q.append(k, x); });
      } else if (v !== '' && v !== null && v !== undefined) {
        q.set(k, v);
      }
    });
    var s = q.toString();
    return s ? '?' + s : '';
  }

  function replaceQuery(params) {
    history.replaceState(null, '', location.pathname + queryString(params) + location.hash);
  }

  // ---------- Header ----------
  var header = document.getElementById('site-header');
  function onScroll() {
    if (header) header.classList.toggle('scrolled', window.scrollY > 40);
  }
  window.addEventListener('scroll', onScroll, { passive: true });
  onScroll();

  var menuToggle = document.getElementById('menu-toggle');
  var mainNav = document.getElementById('main-nav');
  if (menuToggle && mainNav) {
    menuToggle.addEventListener('click', function() {
      var open = mainNav.classList.toggle('open');
      menuToggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  }
  document.querySelectorAll('.dropdown-toggle').forEach(function(btn) {
    btn.addEventListener('click', function() {
      var open = btn.parentElement.classList.toggle('open');
      btn.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
  });

  // ---------- Reveal ----------
  var revealEls = document.querySelectorAll('[data-reveal]');
  function reveal(el) {
    var delay = el.getAttribute('data-reveal-delay');
    if (delay) el.style.transitionDelay = delay;
    el.classList.add('revealed');
  }
  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        reveal(entry.target);
        observer.unobserve(entry.target);
      });
    }, { rootMargin: '0px 0px -10% 0px', threshold: 0.1 });
    revealEls.forEach(function(el) { observer.observe(el); });
  } else {
    revealEls.forEach(reveal);
  }

  // ---------- Gallery ----------
  var gallery = document.getElementById('gallery');
  if (gallery) initGallery(gallery);

  function initGallery(root) {
    var data = JSON.parse(document.getElementById('gallery-data').textContent);
    var items = data.items;
    var lightbox = document.getElementById('lightbox');
    var state = { category: data.state.category || 'All', selected: data.state.selected || 0 };
    var socket = null;

    // Local transitions mirror the server so the page works on a static host.
    function view(category) {
      if (category === 'All') return items.slice();
      return items.filter(function(it) { return it.category === category; });
    }
    function indexOf(list, id) {
      for (var i = 0; i < list.length; i++) if (list[i].id === id) return i;
      return -1;
    }
    function applyLocal(op, arg) {
      var current = view(state.category);
      switch (op) {
      case 'filter':
        if (data.categories.indexOf(arg) < 0) return;
        state.category = arg;
        if (state.selected && indexOf(view(arg), state.selected) < 0) state.selected = 0;
        break;
      case 'open':
        if (indexOf(current, arg) >= 0) state.selected = arg;
        break;
      case 'close':
        state.selected = 0;
        break;
      case 'next':
      case 'previous':
        var i = indexOf(current, state.selected);
        if (i < 0 || current.length < 2) return;
        var n = current.length;
        state.selected = current[(i + (op === 'next' ? 1 : -1) + n) % n].id;
        break;
      }
    }
    function snapshot() {
      var current = view(state.category);
      var i = indexOf(current, state.selected);
      return {
        category: state.category,
        items: current,
        viewer: i < 0 ? { open: false, position: 0, total: current.length }
                      : { open: true, item: current[i], position: i + 1, total: current.length }
      };
    }

    function render(snap) {
      var ids = {};
      snap.items.forEach(function(it) { ids[it.id] = true; });
      root.querySelectorAll('[data-gallery-open]').forEach(function(card) {
        card.hidden = !ids[Number(card.getAttribute('data-gallery-open'))];
      });
      root.querySelectorAll('[data-gallery-filter]').forEach(function(btn) {
        var active = btn.getAttribute('data-gallery-filter') === snap.category;
        btn.classList.toggle('active', active);
        btn.setAttribute('aria-selected', active ? 'true' : 'false');
      });
      var v = snap.viewer;
      lightbox.hidden = !v.open;
      document.body.classList.toggle('lightbox-open', v.open);
      if (v.open) {
        lightbox.querySelector('[data-field="category"]').textContent = v.item.category;
        lightbox.querySelector('[data-field="title"]').textContent = v.item.title;
        lightbox.querySelector('[data-field="location"]').textContent = v.item.location;
        lightbox.querySelector('[data-field="position"]').textContent = v.position + ' / ' + v.total;
      }
      replaceQuery({ category: state.category === 'All' ? '' : state.category, item: state.selected || '' });
    }

    function dispatch(op, arg) {
      if (socket && socket.readyState === WebSocket.OPEN) {
        var msg = { op: op };
        if (op === 'filter') msg.category = arg;
        if (op === 'open') msg.id = arg;
        socket.send(JSON.stringify(msg));
        return;
      }
      applyLocal(op, arg);
      render(snapshot());
    }

    if (!isStatic && 'WebSocket' in window) {
      var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
      var url = proto + '//' + location.host + root.getAttribute('data-ws') +
        queryString({ category: state.category === 'All' ? '' : state.category, item: state.selected || '' });
      try {
        socket = new WebSocket(url);
        socket.onmessage = function(ev) {
          var msg = JSON.parse(ev.data);
          if (msg.type !== 'snapshot') return;
          state.category = msg.state.category;
          state.selected = msg.state.selected;
          render(msg.snapshot);
        };
        socket.onclose = function() { socket = null; };
      } catch (e) {
        socket = null;
      }
    }

    // A static host ignores the query string, so apply it here.
    if (isStatic) {
      var q = new URLSearchParams(location.search);
      if (q.get('category')) applyLocal('filter', q.get('category'));
      if (q.get('item')) applyLocal('open', Number(q.get('item')));
      render(snapshot());
    }

    root.addEventListener('click', function(ev) {
      var el = ev.target.closest('[data-gallery-filter],[data-gallery-open],[data-gallery-op]');
      if (!el) return;
      ev.preventDefault();
      if (el.hasAttribute('data-gallery-filter')) {
        dispatch('filter', el.getAttribute('data-gallery-filter'));
      } else if (el.hasAttribute('data-gallery-open')) {
        dispatch('open', Number(el.getAttribute('data-gallery-open')));
      } else {
        dispatch(el.getAttribute('data-gallery-op'));
      }
    });
    lightbox.addEventListener('click', function(ev) {
      if (ev.target === lightbox) dispatch('close');
    });
    document.addEventListener('keydown', function(ev) {
      if (lightbox.hidden) return;
      if (ev.key === 'Escape') dispatch('close');
      else if (ev.key === 'ArrowRight') dispatch('next');
      else if (ev.key === 'ArrowLeft') dispatch('previous');
    });
  }

  // ---------- FAQ ----------
  var faq = document.getElementById('faq');
  if (faq) initFAQ(faq);

  function initFAQ(root) {
    var q = new URLSearchParams(location.search);
    var category = q.get('category') || '';
    var open = {};
    q.getAll('open').forEach(function(i) { open[i] = true; });
    var first = root.querySelector('[data-faq-category]');
    var defaultCategory = first ? first.getAttribute('data-faq-category') : '';

    function render() {
      var active = category || defaultCategory;
      root.querySelectorAll('[data-faq-category]').forEach(function(btn) {
        var on = btn.getAttribute('data-faq-category') === active;
        btn.classList.toggle('active', on);
        btn.setAttribute('aria-selected', on ? 'true' : 'false');
      });
      root.querySelectorAll('[data-faq-panel]').forEach(function(panel) {
        var on = panel.getAttribute('data-faq-panel') === active;
        panel.hidden = !on;
        panel.querySelectorAll('[data-faq-toggle]').forEach(function(btn) {
          var isOpen = on && !!open[btn.getAttribute('data-faq-toggle')];
          btn.setAttribute('aria-expanded', isOpen ? 'true' : 'false');
          btn.parentElement.classList.toggle('open', isOpen);
          btn.nextElementSibling.hidden = !isOpen;
        });
      });
      replaceQuery({ category: active === defaultCategory ? '' : active, open: Object.keys(open).sort() });
    }

    root.addEventListener('click', function(ev) {
      var tab = ev.target.closest('[data-faq-category]');
      var toggle = ev.target.closest('[data-faq-toggle]');
      if (tab) {
        ev.preventDefault();
        category = tab.getAttribute('data-faq-category');
        open = {};
        render();
      } else if (toggle) {
        ev.preventDefault();
        var i = toggle.getAttribute('data-faq-toggle');
        if (open[i]) delete open[i]; else open[i] = true;
        render();
      }
    });
    if (isStatic) render();
  }

  // ---------- Blog ----------
  var blogFilters = document.querySelectorAll('[data-blog-filter]');
  if (blogFilters.length) {
    var applyBlog = function(category) {
      blogFilters.forEach(function(btn) {
        btn.classList.toggle('active', btn.getAttribute('data-blog-filter') === category);
      });
      document.querySelectorAll('.post-card[data-category]').forEach(function(card) {
        card.hidden = category !== 'All' && card.getAttribute('data-category') !== category;
      });
      replaceQuery({ category: category === 'All' ? '' : category });
    };
    blogFilters.forEach(function(btn) {
      btn.addEventListener('click', function(ev) {
        ev.preventDefault();
        applyBlog(btn.getAttribute('data-blog-filter'));
      });
    });
    if (isStatic) {
      var known = Array.prototype.map.call(blogFilters, function(b) { return b.getAttribute('data-blog-filter'); });
      var wanted = new URLSearchParams(location.search).get('category');
      applyBlog(known.indexOf(wanted) >= 0 ? wanted : 'All');
    }
  }

  // ---------- Contact ----------
  // A static host has nothing to post to; show the thank-you panel in place.
  var form = document.getElementById('contact-form');
  if (form && isStatic) {
    var thanks = document.getElementById('thank-you');
    form.addEventListener('submit', function(ev) {
      ev.preventDefault();
      if (!form.checkValidity()) {
        form.reportValidity();
        return;
      }
      form.hidden = true;
      thanks.hidden = false;
    });
    document.getElementById('send-another').addEventListener('click', function(ev) {
      ev.preventDefault();
      form.reset();
      form.hidden = false;
      thanks.hidden = true;
    });
  }
})();
`
