package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/akashgh003/gen-ai-asgn/internal/session"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// alert asks the script to raise a blocking alert and leave the page as is.
func alert(w http.ResponseWriter, status int, msg string) {
	w.Header().Set(HeaderAlert, msg)
	w.WriteHeader(status)
}

// superseded answers a request that a newer one on the same surface
// replaced. The script discards it.
func superseded(w http.ResponseWriter) {
	w.Header().Set(HeaderSuperseded, "1")
	w.WriteHeader(http.StatusConflict)
}

// render executes fn into a buffer so that a template failure never leaves
// a half-written fragment behind.
func (c *Controller) render(w http.ResponseWriter, status int, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		log.Error().Err(err).Msg("rendering fragment")
		c.inlineError(w, http.StatusInternalServerError, MsgRenderFailed)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

// renderLatest renders like render but drops the fragment when a newer
// request on the same surface began while it was being rendered.
func (c *Controller) renderLatest(w http.ResponseWriter, ticket *session.Ticket, fn func(io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		log.Error().Err(err).Msg("rendering fragment")
		c.inlineError(w, http.StatusInternalServerError, MsgRenderFailed)
		return
	}
	if !ticket.Current() {
		superseded(w)
		return
	}
	writeHTML(w, http.StatusOK, buf.Bytes())
}

func (c *Controller) inlineError(w http.ResponseWriter, status int, msg string) {
	var buf bytes.Buffer
	if err := c.renderer.InlineError(&buf, msg); err != nil {
		log.Error().Err(err).Msg("rendering inline error")
		http.Error(w, msg, status)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		io.WriteString(w, body)
	}
}
