// internal/app/system/flash/flash.go
//
// Package flash carries one-shot notifications across requests using a
// signed cookie session. It is the server-rendered stand-in for toast
// popups: a handler records the outcome of an operation ("Loaded 12
// products successfully", "Failed to send message: ..."), and the next
// render shows and clears it.
//
// Everything here is best-effort. A flash that cannot be saved is logged
// and dropped; it never affects the operation whose outcome it reports.
package flash

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// Kind classifies a flash for display styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is one pending notification.
type Message struct {
	Kind Kind
	Text string
}

func init() {
	// gorilla/sessions gob-encodes flash values into the cookie.
	gob.Register(Message{})
}

// Manager reads and writes flash messages through a cookie store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager creates a flash manager. If key is blank a random key is
// generated, which is fine for development but means pending flashes do
// not survive a restart.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) *Manager {
	if key == "" {
		logger.Warn("session_key not set; generating a random flash cookie key")
		key = string(securecookie.GenerateRandomKey(32))
	}
	store := sessions.NewCookieStore([]byte(key))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: name, log: logger}
}

// Success queues a success flash for the next render.
func (m *Manager) Success(w http.ResponseWriter, r *http.Request, text string) {
	m.add(w, r, KindSuccess, text)
}

// Failure queues an error flash for the next render.
func (m *Manager) Failure(w http.ResponseWriter, r *http.Request, text string) {
	m.add(w, r, KindError, text)
}

func (m *Manager) add(w http.ResponseWriter, r *http.Request, kind Kind, text string) {
	sess, _ := m.store.Get(r, m.name)
	sess.AddFlash(Message{Kind: kind, Text: text})
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("saving flash failed", zap.Error(err))
	}
}

// Take returns all pending flashes and clears them.
func (m *Manager) Take(w http.ResponseWriter, r *http.Request) []Message {
	sess, _ := m.store.Get(r, m.name)
	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(r, w); err != nil {
			m.log.Warn("clearing flashes failed", zap.Error(err))
		}
	}
	out := make([]Message, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(Message); ok {
			out = append(out, msg)
		}
	}
	return out
}
