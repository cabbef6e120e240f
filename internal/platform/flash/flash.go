// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flash carries one-shot user notices across a post/redirect/get cycle.

A mutation handler pushes a [Message] ("The venue X was successfully listed!")
and redirects; the next page render pops and displays it. Messages are keyed by
an anonymous session cookie and stored outside the process (Redis), so any
worker can serve the follow-up request.
*/
package flash

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
)

// Level selects the visual style of a message.
type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
)

// Message is a single flash notice.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Success builds a success notice.
func Success(text string) Message { return Message{Level: LevelSuccess, Text: text} }

// Danger builds an error notice.
func Danger(text string) Message { return Message{Level: LevelDanger, Text: text} }

// Store persists pending messages per session.
type Store interface {
	Push(ctx context.Context, sessionID string, message Message, ttl time.Duration) error
	// Pop returns and removes all pending messages, oldest first.
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

// Notifier queues notices for the current request's session. [*Manager] satisfies it.
type Notifier interface {
	Add(ctx context.Context, message Message)
}

// Manager binds a [Store] to the request's flash session.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
}

// NewManager constructs a [Manager]. secure marks the session cookie Secure.
func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, secure: secure}
}

// Middleware ensures every request has a flash session id, issuing the
// cookie on first contact.
func (manager *Manager) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			sessionID := ""
			if cookie, err := request.Cookie(constants.FlashCookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = parsed.String()
				}
			}

			if sessionID == "" {
				sessionID = newSessionID()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.FlashCookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(constants.FlashCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   manager.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := ctxutil.WithFlashSession(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// Add queues a message for the next page render of this session.
//
// Storage failures are logged and swallowed: a lost notice must never turn a
// committed mutation into an error response.
func (manager *Manager) Add(ctx context.Context, message Message) {
	sessionID := ctxutil.GetFlashSession(ctx)
	if sessionID == "" {
		return
	}

	if err := manager.store.Push(ctx, sessionID, message, manager.ttl); err != nil {
		ctxutil.GetLogger(ctx).Warn("flash_push_failed", slog.Any("error", err))
	}
}

// Pop drains the pending messages of this session.
func (manager *Manager) Pop(ctx context.Context) []Message {
	sessionID := ctxutil.GetFlashSession(ctx)
	if sessionID == "" {
		return nil
	}

	messages, err := manager.store.Pop(ctx, sessionID)
	if err != nil {
		ctxutil.GetLogger(ctx).Warn("flash_pop_failed", slog.Any("error", err))
		return nil
	}
	return messages
}

func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
