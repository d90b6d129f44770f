// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

// Package respond provides HTTP response helpers shared by all handlers.
//
// # Architecture
//
// Browser-facing routes answer with redirects (post/redirect/get) carrying
// flash notices; only the infrastructure probes speak JSON. This package
// centralizes both so handlers never touch header plumbing directly.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/flash"
)

// # Browser Responses

// Redirect sends a 303 See Other to the given location.
//
// 303 forces the follow-up request to be a GET even after a POST/PUT/DELETE,
// which is exactly the post/redirect/get contract the forms rely on.
func Redirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

// RedirectWithFlash queues a one-time notice and redirects.
func RedirectWithFlash(writer http.ResponseWriter, request *http.Request, location string, kind flash.Kind, message string) {
	flash.Set(writer, kind, message)
	Redirect(writer, request, location)
}

// FlashMessage translates an error into a notice safe to show a visitor.
//
// Expected failures carry their own client-safe message; anything else is
// collapsed into the generic one so internals never leak into a banner.
func FlashMessage(err error) string {
	if appError := apperr.As(err); appError != nil {
		if len(appError.Details) > 0 {
			return appError.Details[0].Message
		}
		return appError.Message
	}
	return "Something went wrong"
}

// # JSON Responses (health probes)

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK JSON response.
func OK(writer http.ResponseWriter, payload interface{}) {
	JSON(writer, http.StatusOK, payload)
}
