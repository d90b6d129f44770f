// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvx/listora/internal/platform/constants"
	"github.com/hoangvx/listora/internal/platform/view"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()

	service, _, _ := newTestService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer, err := view.New(logger)
	require.NoError(t, err)

	router := chi.NewRouter()
	NewHandler(service, renderer, false).RegisterRoutes(router)
	return router, service
}

func postForm(router chi.Router, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// # Signup

func TestSignupPage(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "form")
}

func TestRegisterFlow(t *testing.T) {
	router, service := newTestRouter(t)

	recorder := postForm(router, "/", url.Values{
		"username": {"hoang"},
		"email":    {"hoang@example.com"},
		"password": {"correct-horse"},
	})

	// Post/redirect/get: success heads to the index without a session; the
	// auth gate will forward the anonymous visitor to the login form.
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/list", recorder.Header().Get("Location"))

	_, err := service.Authenticate(context.Background(), "hoang", "correct-horse")
	assert.NoError(t, err)
}

func TestRegisterFlow_InvalidInputRedirectsBack(t *testing.T) {
	router, service := newTestRouter(t)

	recorder := postForm(router, "/", url.Values{
		"username": {"hoang"},
		"email":    {"not-an-email"},
		"password": {"short"},
	})

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	_, err := service.Authenticate(context.Background(), "hoang", "short")
	assert.Error(t, err, "rejected signup must not create an account")
}

// # Login / Logout

func TestLoginFlow(t *testing.T) {
	router, service := newTestRouter(t)
	registerTestUser(t, service)

	recorder := postForm(router, "/login", url.Values{
		"username": {"hoang"},
		"password": {"correct-horse"},
	})

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/list", recorder.Header().Get("Location"))

	cookie := sessionCookie(t, recorder)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)

	principal, err := service.ResolveSession(context.Background(), cookie.Value)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, "hoang", principal.Username)
}

func TestLoginFlow_BadCredentialsRedirectToLogin(t *testing.T) {
	router, service := newTestRouter(t)
	registerTestUser(t, service)

	recorder := postForm(router, "/login", url.Values{
		"username": {"hoang"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	for _, cookie := range recorder.Result().Cookies() {
		assert.NotEqual(t, constants.SessionCookieName, cookie.Name,
			"failed login must not set a session cookie")
	}
}

func TestLogoutFlow(t *testing.T) {
	router, service := newTestRouter(t)
	registerTestUser(t, service)

	login := postForm(router, "/login", url.Values{
		"username": {"hoang"},
		"password": {"correct-horse"},
	})
	cookie := sessionCookie(t, login)

	request := httptest.NewRequest(http.MethodGet, "/logout", nil)
	request.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))

	cleared := sessionCookie(t, recorder)
	assert.Equal(t, "", cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	principal, err := service.ResolveSession(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Nil(t, principal, "session must be destroyed server-side")
}

func TestLogoutFlow_WithoutSession(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest(http.MethodGet, "/logout", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
}
