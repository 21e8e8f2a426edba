package web

import (
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/akashgh003/gen-ai-asgn/internal/session"
	"github.com/akashgh003/gen-ai-asgn/internal/view"
)

func (c *Controller) handlePage(w http.ResponseWriter, r *http.Request) {
	client := c.clientID(w, r)

	theme, err := c.prefs.Theme(r.Context(), client)
	if err != nil {
		log.Warn().Err(err).Str("client", client).Msg("loading theme")
	}
	w.Header().Set("Cache-Control", "no-store")
	c.render(w, http.StatusOK, func(out io.Writer) error {
		return c.renderer.Page(out, view.PageData{
			ThemeClass: view.ThemeClass(theme),
			PageID:     uuid.NewString(),
		})
	})
}

func (c *Controller) handleQuery(w http.ResponseWriter, r *http.Request) {
	client := c.clientID(w, r)
	query := strings.TrimSpace(r.FormValue("query"))
	if query == "" {
		alert(w, http.StatusBadRequest, MsgEmptyQuery)
		return
	}

	ctx, ticket := c.tracker.Begin(r.Context(), pageScope(client, r), session.SurfacePrimary)
	defer ticket.Done()

	res, err := c.backend.Query(ctx, query)
	if !ticket.Current() {
		superseded(w)
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("surface", string(session.SurfacePrimary)).Msg("backend request failed")
		c.inlineError(w, http.StatusBadGateway, MsgQueryFailed)
		return
	}

	w.Header().Set(HeaderReveal, followupSectionID)
	c.renderLatest(w, ticket, func(out io.Writer) error {
		return c.renderer.QueryResults(out, res)
	})
}

func (c *Controller) handleFollowup(w http.ResponseWriter, r *http.Request) {
	client := c.clientID(w, r)
	followup := strings.TrimSpace(r.FormValue("followup"))
	if followup == "" {
		alert(w, http.StatusBadRequest, MsgEmptyFollowup)
		return
	}
	original := strings.TrimSpace(r.FormValue("original_query"))

	ctx, ticket := c.tracker.Begin(r.Context(), pageScope(client, r), session.SurfaceFollowup)
	defer ticket.Done()

	res, err := c.backend.Followup(ctx, original, followup)
	if !ticket.Current() {
		superseded(w)
		return
	}
	w.Header().Set(HeaderReset, followupInputID)
	if err != nil {
		log.Warn().Err(err).Str("surface", string(session.SurfaceFollowup)).Msg("backend request failed")
		c.inlineError(w, http.StatusBadGateway, MsgFollowupFailed)
		return
	}

	c.renderLatest(w, ticket, func(out io.Writer) error {
		return c.renderer.Followup(out, followup, res)
	})
}

func (c *Controller) handleSearch(w http.ResponseWriter, r *http.Request) {
	client := c.clientID(w, r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		alert(w, http.StatusBadRequest, MsgEmptySearch)
		return
	}

	ctx, ticket := c.tracker.Begin(r.Context(), pageScope(client, r), session.SurfaceSearch)
	defer ticket.Done()

	res, err := c.backend.Search(ctx, query)
	if !ticket.Current() {
		superseded(w)
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("surface", string(session.SurfaceSearch)).Msg("backend request failed")
		alert(w, http.StatusBadGateway, MsgSearchFailed)
		return
	}

	c.renderLatest(w, ticket, func(out io.Writer) error {
		return c.renderer.SearchResults(out, res)
	})
}

func (c *Controller) handleTechnicalInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.backend.TechnicalInfo(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("loading technical info")
		c.render(w, http.StatusBadGateway, c.renderer.TechnicalInfoError)
		return
	}
	c.render(w, http.StatusOK, func(out io.Writer) error {
		return c.renderer.TechnicalInfo(out, info)
	})
}

func (c *Controller) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.backend.ModelInfo(r.Context())
	if err != nil {
		log.Warn().Err(err).Msg("loading model info")
		c.render(w, http.StatusBadGateway, c.renderer.ModelInfoError)
		return
	}
	c.render(w, http.StatusOK, func(out io.Writer) error {
		return c.renderer.ModelInfo(out, info)
	})
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func (c *Controller) handleTheme(w http.ResponseWriter, r *http.Request) {
	client := c.clientID(w, r)

	theme, err := c.prefs.ToggleTheme(r.Context(), client)
	if err != nil {
		log.Error().Err(err).Str("client", client).Msg("toggling theme")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save theme"})
		return
	}
	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}
