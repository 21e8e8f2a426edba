package web

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/akashgh003/gen-ai-asgn/internal/backend"
	"github.com/akashgh003/gen-ai-asgn/internal/prefs"
	"github.com/akashgh003/gen-ai-asgn/internal/session"
	"github.com/akashgh003/gen-ai-asgn/internal/view"
)

// Headers read by the page script.
const (
	HeaderAlert      = "X-Alert"
	HeaderReveal     = "X-Reveal"
	HeaderReset      = "X-Reset"
	HeaderSuperseded = "X-Superseded"
	// HeaderPage is sent by the script with the id of the page it runs in.
	HeaderPage = "X-Page"
)

// Messages shown to the user.
const (
	MsgEmptyQuery    = "Please enter a query"
	MsgEmptyFollowup = "Please enter a follow-up question"
	MsgEmptySearch   = "Please enter a search query"

	MsgQueryFailed    = "Error processing your query. Please try again."
	MsgFollowupFailed = "Error processing your follow-up question. Please try again."
	MsgSearchFailed   = "An error occurred while processing your search. Please try again."
	MsgRenderFailed   = "Something went wrong while displaying this content."
)

// Element ids targeted by response headers.
const (
	followupSectionID = "followup-section"
	followupInputID   = "followup-input"
)

// Backend is the subset of the product-search API the controller uses.
type Backend interface {
	Query(ctx context.Context, query string) (*backend.QueryResult, error)
	Followup(ctx context.Context, originalQuery, followupQuery string) (*backend.FollowupResult, error)
	Search(ctx context.Context, query string) (*backend.QueryResult, error)
	TechnicalInfo(ctx context.Context) (*backend.TechnicalInfo, error)
	ModelInfo(ctx context.Context) (*backend.ModelInfo, error)
}

// Controller serves the advisor page and the fragments it requests.
type Controller struct {
	backend       Backend
	renderer      *view.Renderer
	tracker       *session.Tracker
	prefs         *prefs.Store
	secureCookies bool
}

// New creates a new Controller.
func New(b Backend, renderer *view.Renderer, tracker *session.Tracker, prefStore *prefs.Store, secureCookies bool) *Controller {
	return &Controller{
		backend:       b,
		renderer:      renderer,
		tracker:       tracker,
		prefs:         prefStore,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the page, fragment and asset routes onto r.
func (c *Controller) RegisterRoutes(r chi.Router) {
	r.Get("/", c.handlePage)
	r.Get("/static/app.js", serveAsset("application/javascript; charset=utf-8", view.JS))
	r.Get("/static/style.css", serveAsset("text/css; charset=utf-8", view.CSS))

	r.Route("/ui", func(r chi.Router) {
		r.Post("/query", c.handleQuery)
		r.Post("/followup", c.handleFollowup)
		r.Get("/search", c.handleSearch)
		r.Get("/technical-info", c.handleTechnicalInfo)
		r.Get("/model-info", c.handleModelInfo)
		r.Post("/theme", c.handleTheme)
	})
}
