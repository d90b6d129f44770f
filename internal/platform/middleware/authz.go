// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package middleware

import (
	"context"
	"net/http"

	"github.com/hoangvx/listora/internal/platform/constants"
	"github.com/hoangvx/listora/internal/platform/ctxutil"
	"github.com/hoangvx/listora/internal/platform/flash"
	"github.com/hoangvx/listora/internal/platform/sec"
)

// SessionResolver turns a raw session cookie value into an identity.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject fakes during unit
// testing.
type SessionResolver interface {
	// ResolveSession returns the identity for the cookie value, or nil if the
	// session is absent, expired, or destroyed. Anonymous is not an error.
	ResolveSession(ctx context.Context, cookieValue string) (*sec.Principal, error)
}

// Authenticate resolves the session cookie into a [sec.Principal] on every request.
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve it through the [SessionResolver].
//  4. Inject the [*sec.Principal] into the request context for downstream use.
//
// A cookie that fails to resolve (tampered, expired, destroyed) degrades to
// anonymous rather than failing the request: the authorization gate decides
// what anonymous is allowed to do.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cookie, err := request.Cookie(constants.SessionCookieName)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			principal, err := resolver.ResolveSession(request.Context(), cookie.Value)
			if err != nil || principal == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireIdentity blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if a [*sec.Principal] exists in context.
//  2. If missing, queue a flash notice and redirect to the login page.
//
// This is a UI-facing rejection, not a protocol-level one: the browser lands
// on /login with "You must be logged in" instead of a bare 401 body.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		principal := ctxutil.GetPrincipal(request.Context())
		if principal == nil {
			flash.Set(writer, flash.Error, "You must be logged in")
			http.Redirect(writer, request, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(writer, request)
	})
}
