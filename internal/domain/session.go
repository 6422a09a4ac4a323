package domain

import (
	"net/http"
	"time"
)

// Session is the authenticated connection state created by connect and
// handed to every command handler. The zero value means "not connected".
type Session struct {
	ID          string
	BaseURL     string
	User        string
	Jar         http.CookieJar
	ConnectedAt time.Time
}

// Connected reports whether the session holds a completed login.
func (s *Session) Connected() bool {
	return s != nil && s.BaseURL != "" && s.Jar != nil
}

// Replace overwrites the session in place with other's state.
func (s *Session) Replace(other *Session) {
	if other == nil {
		*s = Session{}
		return
	}
	*s = *other
}
