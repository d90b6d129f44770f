// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

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

	"github.com/hoangvx/listora/internal/platform/middleware"
	"github.com/hoangvx/listora/internal/platform/sec"
	"github.com/hoangvx/listora/internal/platform/view"
)

// fakeResolver maps cookie values straight to principals.
type fakeResolver struct {
	principals map[string]*sec.Principal
}

func (f *fakeResolver) ResolveSession(_ context.Context, cookieValue string) (*sec.Principal, error) {
	return f.principals[cookieValue], nil
}

func newTestHandler(t *testing.T) (chi.Router, *Service, *fakeRepo) {
	t.Helper()

	service, repo := newTestService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer, err := view.New(logger)
	require.NoError(t, err)

	resolver := &fakeResolver{principals: map[string]*sec.Principal{
		"cookie-alice": &alice,
		"cookie-bob":   &bob,
	}}

	router := chi.NewRouter()
	router.Use(middleware.MethodOverride())
	router.Use(middleware.Authenticate(resolver))
	NewHandler(service, renderer).RegisterRoutes(router)
	return router, service, repo
}

func doRequest(router chi.Router, method, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	var request *http.Request
	if form != nil {
		request = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		request = httptest.NewRequest(method, path, nil)
	}
	if cookie != "" {
		request.AddCookie(&http.Cookie{Name: "listora_session", Value: cookie})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

// # Authorization Gate

func TestProtectedRoutes_AnonymousIsRedirectedWithoutMutation(t *testing.T) {
	router, service, repo := newTestHandler(t)

	seeded, err := service.Create(context.Background(), CreateInput{Title: "Seeded"}, alice)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		method string
		path   string
		form   url.Values
	}{
		{"index", http.MethodGet, "/list", nil},
		{"new form", http.MethodGet, "/list/new", nil},
		{"create", http.MethodPost, "/list", url.Values{"title": {"Sneaky"}}},
		{"show", http.MethodGet, "/list/" + seeded.ID, nil},
		{"edit form", http.MethodGet, "/list/" + seeded.ID + "/edit", nil},
		{"update", http.MethodPost, "/list/" + seeded.ID, url.Values{"_method": {"PUT"}, "title": {"Hijacked"}}},
		{"delete", http.MethodPost, "/list/" + seeded.ID, url.Values{"_method": {"DELETE"}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := doRequest(router, testCase.method, testCase.path, testCase.form, "")
			assert.Equal(t, http.StatusSeeOther, recorder.Code)
			assert.Equal(t, "/login", recorder.Header().Get("Location"))
		})
	}

	// Nothing was created, changed, or removed.
	require.Len(t, repo.records, 1)
	assert.Equal(t, "Seeded", repo.records[seeded.ID].Title)
}

// # CRUD Flows

func TestIndexAndShow(t *testing.T) {
	router, service, _ := newTestHandler(t)

	created, err := service.Create(context.Background(), CreateInput{Title: "Visible record"}, alice)
	require.NoError(t, err)

	index := doRequest(router, http.MethodGet, "/list", nil, "cookie-bob")
	assert.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), "Visible record")

	show := doRequest(router, http.MethodGet, "/list/"+created.ID, nil, "cookie-bob")
	assert.Equal(t, http.StatusOK, show.Code)
	assert.Contains(t, show.Body.String(), "Visible record")
}

func TestCreateFlow_IgnoresPostedOwnerField(t *testing.T) {
	router, _, repo := newTestHandler(t)

	recorder := doRequest(router, http.MethodPost, "/list", url.Values{
		"title": {"Honest listing"},
		"owner": {"user-bob"},
	}, "cookie-alice")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/list", recorder.Header().Get("Location"))

	require.Len(t, repo.records, 1)
	for _, listing := range repo.records {
		require.NotNil(t, listing.OwnerID)
		assert.Equal(t, alice.UserID, *listing.OwnerID, "owner must come from the session, not the form")
	}
}

func TestUpdateFlow_ViaMethodOverride(t *testing.T) {
	router, service, repo := newTestHandler(t)

	created, err := service.Create(context.Background(), CreateInput{Title: "Before"}, alice)
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/list/"+created.ID, url.Values{
		"_method": {"PUT"},
		"title":   {"After"},
	}, "cookie-alice")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/list/"+created.ID, recorder.Header().Get("Location"))
	assert.Equal(t, "After", repo.records[created.ID].Title)
}

func TestUpdateFlow_NonOwnerGetsForbiddenPage(t *testing.T) {
	router, service, repo := newTestHandler(t)

	created, err := service.Create(context.Background(), CreateInput{Title: "Alice's"}, alice)
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/list/"+created.ID, url.Values{
		"_method": {"PUT"},
		"title":   {"Bob's now"},
	}, "cookie-bob")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "Alice's", repo.records[created.ID].Title)
}

func TestDeleteFlow_ViaMethodOverride(t *testing.T) {
	router, service, repo := newTestHandler(t)

	created, err := service.Create(context.Background(), CreateInput{Title: "Doomed"}, alice)
	require.NoError(t, err)

	recorder := doRequest(router, http.MethodPost, "/list/"+created.ID, url.Values{
		"_method": {"DELETE"},
	}, "cookie-alice")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/list", recorder.Header().Get("Location"))
	assert.Empty(t, repo.records)
}

func TestShow_UnknownIDRendersErrorPage(t *testing.T) {
	router, _, _ := newTestHandler(t)

	recorder := doRequest(router, http.MethodGet, "/list/0191e1a0-0000-7000-8000-000000000000", nil, "cookie-alice")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
