package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"reply_sent":     "Reply sent.",
	"status_updated": "Status updated.",
	"logged_out":     "You have been logged out.",
}

var errText = map[string]string{
	"bad_login":      "Invalid username or password.",
	"empty_message":  "Message cannot be empty.",
	"reply_failed":   "Could not send the reply.",
	"invalid_status": "Invalid status.",
	"not_found":      "Ticket not found.",
}

// MakeFlash reads ?ok= / ?error= query params (or explicit strings) to
// build a transient notice for the page being rendered.
func MakeFlash(r *http.Request, errStr, msgStr string) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		if t, ok := errText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		if t, ok := okText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}

	// Fallback to handler-provided messages.
	if errStr != "" {
		return &Flash{Kind: "error", Text: errStr}
	}
	if msgStr != "" {
		return &Flash{Kind: "ok", Text: msgStr}
	}
	return nil
}
