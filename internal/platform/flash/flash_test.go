// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangvx/listora/internal/platform/constants"
	"github.com/hoangvx/listora/internal/platform/flash"
)

// carryCookies copies the Set-Cookie output of one response onto a new request,
// simulating the browser following a redirect.
func carryCookies(t *testing.T, recorder *httptest.ResponseRecorder, request *http.Request) {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}
}

/*
TestFlash_SetThenPop verifies the one-redirect lifecycle of a notice.
*/
func TestFlash_SetThenPop(t *testing.T) {
	// 1. First response queues the notice
	first := httptest.NewRecorder()
	flash.Set(first, flash.Success, "New listing created!")

	// 2. Browser carries the cookie into the next request
	next := httptest.NewRequest(http.MethodGet, "/list", nil)
	carryCookies(t, first, next)

	// 3. Next render consumes it
	second := httptest.NewRecorder()
	notice := flash.Pop(second, next)

	require.NotNil(t, notice)
	assert.Equal(t, flash.Success, notice.Kind)
	assert.Equal(t, "New listing created!", notice.Message)

	// 4. Pop must clear the cookie
	cleared := false
	for _, cookie := range second.Result().Cookies() {
		if cookie.Name == constants.FlashCookieName {
			assert.LessOrEqual(t, cookie.MaxAge, 0)
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie should be expired after Pop")
}

/*
TestFlash_PopWithoutNotice verifies that an empty request yields no notice.
*/
func TestFlash_PopWithoutNotice(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()

	assert.Nil(t, flash.Pop(recorder, request))
}

/*
TestFlash_MalformedCookie verifies garbled notices are dropped silently.
*/
func TestFlash_MalformedCookie(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.AddCookie(&http.Cookie{Name: constants.FlashCookieName, Value: "%%%not-base64%%%"})

	recorder := httptest.NewRecorder()
	assert.Nil(t, flash.Pop(recorder, request))
}
