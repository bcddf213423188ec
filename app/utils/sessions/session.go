package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "storefront-session"
	userIDSessionKey  = "userID"
)

// SessionStore is the identity provider collaborator: it answers who the
// current user is, or "" for an anonymous request.
type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearUserID(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil || session == nil {
		return ""
	}
	userID, _ := session.Values[userIDSessionKey].(string)
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("sessions: recreating undecodable session: %v", err)
	}
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUserID(w http.ResponseWriter, r *http.Request) error {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		return err
	}
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}
