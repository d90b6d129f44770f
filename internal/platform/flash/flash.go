// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

/*
Package flash implements one-time notices that survive exactly one redirect.

A notice is written as a short-lived cookie before the redirect and consumed
(read and cleared) by the next page render. This mirrors the classic
post/redirect/get feedback pattern: "New listing created!", "You must be
logged in", and so on.

The cookie carries no authority — it is pure UI feedback — so it is not signed.
*/
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/hoangvx/listora/internal/platform/constants"
)

// Kind classifies a notice for presentation (success banner vs error banner).
type Kind string

const (
	// Success marks a confirmation notice.
	Success Kind = "success"

	// Error marks a failure notice.
	Error Kind = "error"
)

// Notice is a single one-time user-facing message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Set queues a notice for the next rendered page.
//
// The cookie is scoped to the whole site and capped at a short MaxAge so an
// unconsumed notice cannot linger.
func Set(writer http.ResponseWriter, kind Kind, message string) {
	payload, err := json.Marshal(Notice{Kind: kind, Message: message})
	if err != nil {
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop consumes the pending notice, clearing the cookie.
//
// It returns nil if no notice is pending or the cookie is malformed — a
// garbled notice is dropped silently rather than breaking the page.
func Pop(writer http.ResponseWriter, request *http.Request) *Notice {
	cookie, err := request.Cookie(constants.FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	// Clear regardless of whether decoding succeeds below.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	notice := &Notice{}
	if err := json.Unmarshal(payload, notice); err != nil {
		return nil
	}

	return notice
}
