package web

import (
	"encoding/json"
	"net/http"
)

// isAdmin checks the session cookie for the admin flag, falling back to the
// configured token passed via header or query parameter.
func (s *Server) isAdmin(r *http.Request) bool {
	if c, err := r.Cookie("session"); err == nil && c.Value == "admin" {
		return true
	}
	token := s.cfg.Admin.Token
	if token == "" {
		return false
	}
	if h := r.Header.Get("X-Admin-Token"); h != "" && h == token {
		return true
	}
	if q := r.URL.Query().Get("token"); q != "" && q == token {
		return true
	}
	return false
}

// handleLogin expects JSON {"username","password"} and sets a session cookie
// for the admin.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var cred struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&cred); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if cred.Username == s.cfg.Admin.Username && cred.Password == s.cfg.Admin.Password {
		http.SetCookie(w, &http.Cookie{
			Name:     "session",
			Value:    "admin",
			Path:     "/",
			HttpOnly: true,
		})
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusOK)
}
