package web

import (
	"net/http"

	"github.com/google/uuid"
)

// ClientCookie identifies a browser across requests.
const ClientCookie = "advisor_client"

const clientCookieMaxAge = 365 * 24 * 60 * 60

// clientID returns the caller's id, issuing a new cookie when the request
// carries none or an invalid one.
func (c *Controller) clientID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(ClientCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String()
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     ClientCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   clientCookieMaxAge,
		HttpOnly: true,
		Secure:   c.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// pageScope narrows client to the page a request came from. Requests
// without a valid page id share the client-wide scope.
func pageScope(client string, r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(HeaderPage)); err == nil {
		return client + "/" + id.String()
	}
	return client
}
