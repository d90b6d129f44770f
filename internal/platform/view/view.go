// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

/*
Package view renders the server-side HTML pages.

Templates are embedded in the binary and parsed once at startup. Each page
template plugs its "content" block into the shared layout, which also renders
the pending flash notice and the navigation state for the current identity.

The renderer is a collaborator of the route handlers, not part of the core:
handlers decide WHAT to show, this package decides HOW it is marked up.
*/
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/hoangvx/listora/internal/platform/apperr"
	"github.com/hoangvx/listora/internal/platform/ctxutil"
	"github.com/hoangvx/listora/internal/platform/flash"
	"github.com/hoangvx/listora/internal/platform/sec"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages lists every page template that plugs into the layout.
var pages = []string{
	"signup",
	"login",
	"listings_index",
	"listings_show",
	"listings_new",
	"listings_edit",
	"error",
}

// Renderer holds the parsed template set.
type Renderer struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

// Data is the payload every template receives.
type Data struct {
	// Title is the page <title>.
	Title string

	// Principal is the authenticated identity, or nil for anonymous pages.
	Principal *sec.Principal

	// Flash is the consumed one-time notice, or nil.
	Flash *flash.Notice

	// Content is the page-specific payload (a listing, a slice of listings, ...).
	Content any
}

// New parses the embedded templates and returns a ready [Renderer].
func New(logger *slog.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		parsed, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("view: failed to parse template %q: %w", page, err)
		}
		templates[page] = parsed
	}

	return &Renderer{templates: templates, logger: logger}, nil
}

// Render writes the named page with the given status code.
//
// The page is rendered to a buffer first so a template failure can still fall
// back to a clean error response instead of a half-written body.
func (renderer *Renderer) Render(writer http.ResponseWriter, request *http.Request, status int, page string, data Data) {
	parsed, ok := renderer.templates[page]
	if !ok {
		renderer.Error(writer, request, apperr.Internal(fmt.Errorf("view: unknown template %q", page)))
		return
	}

	// Consume any pending flash notice unless the caller supplied one.
	if data.Flash == nil {
		data.Flash = flash.Pop(writer, request)
	}
	if data.Principal == nil {
		data.Principal = ctxutil.GetPrincipal(request.Context())
	}

	buffer := &bytes.Buffer{}
	if err := parsed.ExecuteTemplate(buffer, "layout", data); err != nil {
		renderer.logger.ErrorContext(request.Context(), "template_render_failed",
			slog.String("page", page),
			slog.Any("error", err),
		)
		renderer.Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// Error renders the generic failure page for any unhandled error.
//
// This is the last-resort surface: whatever reached here is shown as a plain
// "Something went wrong" page, with the real cause kept in the logs.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error",
			slog.String("code", appError.Code),
			slog.Any("cause", appError.Cause),
		)
	}

	parsed, ok := renderer.templates["error"]
	if !ok {
		http.Error(writer, "Something went wrong", http.StatusInternalServerError)
		return
	}

	data := Data{
		Title:     "Something went wrong",
		Principal: ctxutil.GetPrincipal(request.Context()),
		Content:   appError.Message,
	}

	buffer := &bytes.Buffer{}
	if execErr := parsed.ExecuteTemplate(buffer, "layout", data); execErr != nil {
		http.Error(writer, "Something went wrong", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(appError.HTTPStatus)
	_, _ = buffer.WriteTo(writer)
}
