package odoo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const loginPage = `<form action="/web/login" method="post">
<input type="hidden" name="csrf_token" value="tok123"/>
</form>`

// fakeOdoo is a minimal stand-in for an Odoo web server.
type fakeOdoo struct {
	mu       sync.Mutex
	user     string
	password string
	calls    []map[string]any
	reply    func(w http.ResponseWriter, req map[string]any)
}

func newFakeOdoo(t *testing.T) (*fakeOdoo, *httptest.Server) {
	t.Helper()

	f := &fakeOdoo{user: "admin", password: "admin"}
	mux := http.NewServeMux()

	mux.HandleFunc("/web/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "anon", Path: "/"})
			_, _ = w.Write([]byte(loginPage))
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("csrf_token") != "tok123" {
			http.Error(w, "bad csrf", http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("login") != f.user || r.PostForm.Get("password") != f.password {
			_, _ = w.Write([]byte(loginPage))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "authed", Path: "/"})
		http.Redirect(w, r, "/web", http.StatusSeeOther)
	})

	mux.HandleFunc("/web", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>home</html>"))
	})

	mux.HandleFunc("/web/dataset/call_kw", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session_id")
		if err != nil || cookie.Value != "authed" {
			http.Error(w, "session expired", http.StatusForbidden)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.calls = append(f.calls, req)
		reply := f.reply
		f.mu.Unlock()

		if reply != nil {
			reply(w, req)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req["id"],
			"result":  true,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return f, srv
}

func (f *fakeOdoo) recorded(t *testing.T) []map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.calls...)
}

func newStaticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
