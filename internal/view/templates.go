package view

// pageTemplate is the full advisor page. Every element id listed in
// RequiredElements must be present.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Product Advisor</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body data-page="{{.PageID}}"{{if .ThemeClass}} class="{{.ThemeClass}}"{{end}}>
  <header class="top-bar">
    <h1>Product Advisor</h1>
    <button class="theme-toggle" id="theme-toggle" type="button" aria-label="Toggle theme">&#9680;</button>
  </header>
  <main class="layout">
    <section class="primary">
      <form id="search-form" action="/ui/query" method="post">
        <input type="text" id="query-input" name="query" placeholder="What are you looking for? e.g. gaming laptop under $1500" autocomplete="off">
        <button type="submit">Ask</button>
      </form>
      <div id="results-container" class="results"></div>

      <section id="followup-section" class="followup hidden">
        <h2>Ask a follow-up question</h2>
        <form id="followup-form" action="/ui/followup" method="post">
          <input type="text" id="followup-input" name="followup" placeholder="Which one has the best battery life?" autocomplete="off">
          <button type="submit">Ask</button>
        </form>
        <div id="followup-response"></div>
      </section>

      <section class="text-search">
        <h2>Keyword search</h2>
        <div class="text-search-bar">
          <input type="text" id="text-search-input" name="q" placeholder="Search the catalog" autocomplete="off">
          <button type="button" id="text-search-button">Search</button>
        </div>
        <div id="search-results" class="results"></div>
      </section>
    </section>

    <aside class="sidebar">
      <div id="technical-info-card" class="info-card" data-src="/ui/technical-info">
        <h3>Technical Details</h3>
        <div class="loading">Loading...</div>
      </div>
      <div id="model-info-card" class="info-card" data-src="/ui/model-info">
        <h3>Model Information</h3>
        <div class="loading">Loading...</div>
      </div>
    </aside>
  </main>

  <div id="product-modal" class="modal">
    <div class="modal-body">
      <span id="modal-close" class="close-btn" role="button" aria-label="Close">&times;</span>
      <div id="modal-content-container"></div>
    </div>
  </div>
  <script src="/static/app.js"></script>
</body>
</html>
{{end}}`

const fragmentTemplates = `
{{define "card"}}<div class="product-card">
  {{with matchScore .MatchScore}}<div class="match-score">{{.}}</div>{{end}}
  <div class="product-header">
    <div class="product-name">{{.Name}}</div>
    <div class="product-rating">
      <span class="rating-stars">{{stars .Rating}}</span>
      <span class="review-count">({{reviews .}} reviews)</span>
    </div>
    <div class="product-price">
      <span class="current-price">{{price .Price}}</span>
      {{with originalPrice .}}<span class="original-price">{{.}}</span>{{end}}
      {{with discount .}}<span class="price-savings">{{.}}</span>{{end}}
    </div>
  </div>
  <div class="product-description">{{.Description}}</div>
  <div class="product-tags">{{range tags .}}<div class="product-tag">{{.}}</div>{{end}}</div>
  <template class="product-detail-template">{{template "detail" .}}</template>
</div>{{end}}

{{define "query-results"}}<div class="response-message">{{answer .Response}}</div>
{{if .Products}}<div class="product-grid">{{range .Products}}{{template "card" .}}{{end}}</div>{{end}}
{{if .Rationale}}<div class="rationale-section">
  <h3 class="rationale-title">Why these recommendations?</h3>
  <ul class="rationale-list">{{range .Rationale}}<li class="rationale-item">{{.}}</li>{{end}}</ul>
</div>{{end}}{{end}}

{{define "search-results"}}<div class="response-header">{{answer .Response}}</div>
{{if .Products}}<div class="product-grid">{{range .Products}}{{template "card" .}}{{end}}</div>
{{if .Rationale}}<div class="rationale-section">
  <h3>Why these results?</h3>
  <ul>{{range .Rationale}}<li>{{.}}</li>{{end}}</ul>
</div>{{end}}{{end}}{{end}}

{{define "followup"}}<div class="followup-question">"{{.Question}}"</div>
<div class="followup-answer">{{answer .Answer}}</div>{{end}}

{{define "inline-error"}}<div class="error">{{.}}</div>{{end}}

{{define "detail"}}<div class="product-detail">
  {{with matchScore .MatchScore}}<div class="match-score">{{.}}</div>{{end}}
  <div class="product-detail-header">
    <div>
      <h2 class="product-detail-name">{{.Name}}</h2>
      <div class="product-detail-category">{{.Category}}</div>
      <div class="product-rating">
        <span class="rating-stars">{{stars .Rating}}</span>
        <span class="review-count">({{reviews .}} reviews)</span>
      </div>
    </div>
    <div class="product-detail-price-container">
      <div class="product-detail-price">{{price .Price}}</div>
      {{with originalPrice .}}<div class="product-detail-original">{{.}}</div>{{end}}
      {{with discount .}}<div class="price-savings">{{.}}</div>{{end}}
    </div>
  </div>

  <div class="product-detail-image">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Name}}">{{else}}<div class="no-image">No image available</div>{{end}}
  </div>

  <div class="product-detail-info">
    <div class="product-detail-description">
      <h3>Description</h3>
      <p>{{.Description}}</p>
    </div>
    <div class="product-detail-specs">
      <h3>Specifications</h3>
      <div class="specs-list">{{range .Specs}}
        <div class="spec-item">
          <div class="spec-icon">{{specIcon .Key}}</div>
          <div class="spec-content">
            <div class="spec-label">{{specLabel .Key}}</div>
            <div class="spec-value">{{.Value}}</div>
          </div>
        </div>{{end}}
      </div>
    </div>
  </div>

  {{if .Recommendation}}<div class="product-detail-recommendation">
    <h3>Why We Recommend This</h3>
    <p>{{.Recommendation}}</p>
  </div>{{end}}
</div>{{end}}

{{define "technical-info"}}<h3>Technical Details</h3>
<div class="tech-info">
  <div class="tech-info-grid">{{range .Items}}
    <div class="tech-info-item">
      <div class="tech-info-label">{{.Label}}:</div>
      <div class="tech-info-value">{{.Value}}</div>
    </div>{{end}}
  </div>
</div>{{end}}

{{define "technical-info-error"}}<h3>Technical Details</h3>
<div class="error">Error loading technical information.</div>{{end}}

{{define "model-info"}}<h3>Model Information</h3>
<div class="model-status">
  <div class="model-info-grid">
    <div class="model-info-label">Model:</div>
    <div class="model-info-value">{{.Model}}</div>
    <div class="model-info-label">Status:</div>
    <div class="model-info-value">{{.Status.Health}}</div>
  </div>
  <div>
    <div class="model-info-label">Health:</div>
    <div class="progress-bar">
      <div class="progress-fill" style="width: {{healthWidth .Status.Percentage}}%"></div>
    </div>
  </div>
</div>{{end}}

{{define "model-info-error"}}<h3>Model Information</h3>
<div class="error">Error loading model information.</div>{{end}}
`

// CSS is served at /static/style.css.
const CSS = `:root {
  --bg: #ffffff;
  --bg-card: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --danger: #e03131;
  --success: #2f9e44;
}
body.dark-theme {
  --bg: #1a1b1e;
  --bg-card: #25262b;
  --text: #c1c2c5;
  --text-muted: #909296;
  --border: #373a40;
  --accent: #4dabf7;
}
@media (prefers-color-scheme: dark) {
  body:not(.light-theme) {
    --bg: #1a1b1e;
    --bg-card: #25262b;
    --text: #c1c2c5;
    --text-muted: #909296;
    --border: #373a40;
    --accent: #4dabf7;
  }
}
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; background: var(--bg); color: var(--text); }
.top-bar { display: flex; justify-content: space-between; align-items: center; padding: 1rem 2rem; border-bottom: 1px solid var(--border); }
.theme-toggle { background: none; border: 1px solid var(--border); border-radius: 6px; color: var(--text); font-size: 1.2rem; cursor: pointer; }
.layout { display: grid; grid-template-columns: 1fr 300px; gap: 2rem; padding: 2rem; }
form, .text-search-bar { display: flex; gap: .5rem; margin-bottom: 1rem; }
input[type=text] { flex: 1; padding: .6rem .8rem; border: 1px solid var(--border); border-radius: 6px; background: var(--bg); color: var(--text); }
button { padding: .6rem 1rem; border: none; border-radius: 6px; background: var(--accent); color: #fff; cursor: pointer; }
.hidden { display: none; }
.loading { color: var(--text-muted); font-style: italic; }
.error { color: var(--danger); }
.response-message, .response-header, .followup-answer { white-space: pre-line; margin-bottom: 1rem; }
.product-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 1rem; }
.product-card { position: relative; padding: 1rem; border: 1px solid var(--border); border-radius: 8px; background: var(--bg-card); cursor: pointer; }
.match-score { position: absolute; top: .5rem; right: .5rem; font-size: .75rem; color: var(--success); }
.product-name, .product-detail-name { font-weight: 600; }
.rating-stars { color: #f59f00; }
.review-count { color: var(--text-muted); font-size: .85rem; }
.current-price, .product-detail-price { font-weight: 700; }
.original-price, .product-detail-original { text-decoration: line-through; color: var(--text-muted); margin-left: .4rem; }
.price-savings { color: var(--success); margin-left: .4rem; }
.product-description { font-size: .9rem; margin: .5rem 0; }
.product-tags { display: flex; flex-wrap: wrap; gap: .3rem; }
.product-tag { font-size: .75rem; padding: .1rem .4rem; border: 1px solid var(--border); border-radius: 4px; }
.rationale-section { margin-top: 1.5rem; }
.followup-question { font-style: italic; margin-bottom: .5rem; }
.info-card { padding: 1rem; border: 1px solid var(--border); border-radius: 8px; margin-bottom: 1rem; background: var(--bg-card); }
.tech-info-item { display: flex; justify-content: space-between; gap: .5rem; font-size: .85rem; }
.tech-info-label, .model-info-label { color: var(--text-muted); }
.model-info-grid { display: grid; grid-template-columns: auto 1fr; gap: .3rem .6rem; margin-bottom: .6rem; }
.progress-bar { height: 8px; border-radius: 4px; background: var(--border); overflow: hidden; }
.progress-fill { height: 100%; background: var(--success); }
.modal { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.5); overflow-y: auto; }
.modal-body { position: relative; max-width: 760px; margin: 4rem auto; padding: 2rem; border-radius: 10px; background: var(--bg); }
.close-btn { position: absolute; top: .8rem; right: 1rem; font-size: 1.6rem; cursor: pointer; }
.product-detail-header { display: flex; justify-content: space-between; gap: 1rem; }
.product-detail-image img { max-width: 100%; }
.no-image { padding: 3rem; text-align: center; color: var(--text-muted); border: 1px dashed var(--border); }
.spec-item { display: flex; gap: .6rem; align-items: center; margin: .4rem 0; }
.spec-label { font-size: .8rem; color: var(--text-muted); }
`

// JS is served at /static/app.js. It forwards DOM events to the /ui routes
// and swaps the returned fragments into their containers.
const JS = `(function () {
  "use strict";

  var HEADER_ALERT = "X-Alert";
  var HEADER_REVEAL = "X-Reveal";
  var HEADER_RESET = "X-Reset";
  var HEADER_SUPERSEDED = "X-Superseded";
  var HEADER_PAGE = "X-Page";

  // Newest request per target element; older responses are dropped.
  var latest = {};

  function byId(id) { return document.getElementById(id); }

  function loading(target, text) {
    target.innerHTML = '<div class="loading"></div>';
    target.firstChild.textContent = text;
  }

  // send resolves to true when a fragment was swapped into target.
  // opts.loading shows a placeholder while waiting. An alert puts back
  // what target held before unless opts.keepLoading is set.
  function send(url, init, target, opts) {
    opts = opts || {};
    var token = {};
    latest[target.id] = token;
    var previous = target.innerHTML;
    if (opts.loading) { loading(target, opts.loading); }

    init = init || {};
    init.headers = init.headers || {};
    init.headers[HEADER_PAGE] = document.body.getAttribute("data-page") || "";

    return fetch(url, init).then(function (resp) {
      if (latest[target.id] !== token) { return false; }
      if (resp.headers.get(HEADER_SUPERSEDED)) { return false; }
      var reset = resp.headers.get(HEADER_RESET);
      if (reset && byId(reset)) { byId(reset).value = ""; }
      var alertText = resp.headers.get(HEADER_ALERT);
      if (alertText) {
        if (!opts.keepLoading) { target.innerHTML = previous; }
        alert(alertText);
        return false;
      }
      var reveal = resp.headers.get(HEADER_REVEAL);
      if (reveal && byId(reveal)) { byId(reveal).classList.remove("hidden"); }
      return resp.text().then(function (html) {
        if (latest[target.id] !== token) { return false; }
        target.innerHTML = html;
        return true;
      });
    }).catch(function (err) {
      console.error("Error:", err);
      if (latest[target.id] === token && opts.onFail) { opts.onFail(); }
      return false;
    });
  }

  function post(url, fields, target, opts) {
    return send(url, { method: "POST", body: new URLSearchParams(fields) }, target, opts);
  }

  function inlineError(target, text) {
    return function () {
      target.innerHTML = '<div class="error"></div>';
      target.firstChild.textContent = text;
    };
  }

  function handleSearch() {
    var query = byId("query-input").value.trim();
    if (!query) { alert("Please enter a query"); return; }
    var results = byId("results-container");
    post("/ui/query", { query: query }, results, {
      loading: "Processing your query...",
      onFail: inlineError(results, "Error processing your query. Please try again.")
    });
  }

  function handleFollowUp() {
    var input = byId("followup-input");
    var followup = input.value.trim();
    if (!followup) { alert("Please enter a follow-up question"); return; }
    var original = byId("query-input").value.trim();
    var container = byId("followup-response");
    post("/ui/followup", { followup: followup, original_query: original }, container, {
      loading: "Processing your follow-up question...",
      onFail: inlineError(container, "Error processing your follow-up question. Please try again.")
    }).then(function () { input.value = ""; });
  }

  function handleTextSearch() {
    var query = byId("text-search-input").value.trim();
    if (!query) { alert("Please enter a search query"); return; }
    send("/ui/search?q=" + encodeURIComponent(query), {}, byId("search-results"), {
      loading: "Processing your query...",
      keepLoading: true,
      onFail: function () {
        alert("An error occurred while processing your search. Please try again.");
      }
    });
  }

  // showDetail opens the detail view the card was rendered with.
  function showDetail(card) {
    var tpl = card.querySelector("template.product-detail-template");
    if (!tpl) { return; }
    var container = byId("modal-content-container");
    container.innerHTML = "";
    container.appendChild(tpl.content.cloneNode(true));
    byId("product-modal").style.display = "block";
  }

  function applyTheme(theme) {
    var body = document.body;
    if (theme === "dark") {
      body.classList.remove("light-theme");
      body.classList.add("dark-theme");
    } else {
      body.classList.remove("dark-theme");
      body.classList.add("light-theme");
    }
  }

  function toggleTheme() {
    fetch("/ui/theme", { method: "POST" })
      .then(function (resp) { return resp.json(); })
      .then(function (data) { applyTheme(data.theme); })
      .catch(function (err) { console.error("Error toggling theme:", err); });
  }

  function init() {
    byId("search-form").addEventListener("submit", function (e) { e.preventDefault(); handleSearch(); });
    byId("followup-form").addEventListener("submit", function (e) { e.preventDefault(); handleFollowUp(); });
    byId("theme-toggle").addEventListener("click", toggleTheme);
    byId("text-search-button").addEventListener("click", handleTextSearch);
    byId("text-search-input").addEventListener("keypress", function (e) {
      if (e.key === "Enter") { handleTextSearch(); }
    });

    document.addEventListener("click", function (e) {
      var card = e.target.closest(".product-card");
      if (card) { showDetail(card); }
    });

    var modal = byId("product-modal");
    byId("modal-close").addEventListener("click", function () { modal.style.display = "none"; });
    window.addEventListener("click", function (e) {
      if (e.target === modal) { modal.style.display = "none"; }
    });

    document.querySelectorAll("[data-src]").forEach(function (card) {
      send(card.getAttribute("data-src"), {}, card);
    });
  }

  document.addEventListener("DOMContentLoaded", init);
})();
`
