// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvx/listora/internal/platform/constants"
	"github.com/hoangvx/listora/internal/platform/flash"
	requestutil "github.com/hoangvx/listora/internal/platform/request"
	"github.com/hoangvx/listora/internal/platform/respond"
	"github.com/hoangvx/listora/internal/platform/view"
)

// Handler serves the signup, login, and logout pages.
type Handler struct {
	authService   *Service
	renderer      *view.Renderer
	secureCookies bool
}

// NewHandler constructs a new [Handler].
func NewHandler(authService *Service, renderer *view.Renderer, secureCookies bool) *Handler {
	return &Handler{
		authService:   authService,
		renderer:      renderer,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the identity routes onto the given router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.ShowSignup)
	router.Post("/", handler.Register)
	router.Get("/login", handler.ShowLogin)
	router.Post("/login", handler.Login)
	router.Get("/logout", handler.Logout)
}

// ShowSignup renders the registration form.
func (handler *Handler) ShowSignup(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Render(writer, request, http.StatusOK, "signup", view.Data{
		Title: "Sign up",
	})
}

// Register processes a signup form submission.
//
// Failures flash the reason and return to the form. Success redirects to the
// listing index; registering does not start a session, so the auth gate will
// forward the new member to the login page from there.
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		respond.RedirectWithFlash(writer, request, "/", flash.Error, "Invalid form submission")
		return
	}

	input := RegisterInput{
		Username: request.PostFormValue("username"),
		Email:    request.PostFormValue("email"),
		Password: request.PostFormValue("password"),
	}

	if _, err := handler.authService.Register(request.Context(), input); err != nil {
		respond.RedirectWithFlash(writer, request, "/", flash.Error, respond.FlashMessage(err))
		return
	}

	respond.RedirectWithFlash(writer, request, "/list", flash.Success, "Welcome! Please log in.")
}

// ShowLogin renders the login form.
func (handler *Handler) ShowLogin(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Render(writer, request, http.StatusOK, "login", view.Data{
		Title: "Log in",
	})
}

// Login authenticates a credential pair and establishes a session.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	if err := requestutil.ParseForm(request); err != nil {
		respond.RedirectWithFlash(writer, request, "/login", flash.Error, "Invalid form submission")
		return
	}

	username := request.PostFormValue("username")
	password := request.PostFormValue("password")

	user, err := handler.authService.Authenticate(request.Context(), username, password)
	if err != nil {
		respond.RedirectWithFlash(writer, request, "/login", flash.Error, respond.FlashMessage(err))
		return
	}

	cookieValue, err := handler.authService.CreateSession(request.Context(), user)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.setSessionCookie(writer, cookieValue, int(constants.SessionTTL.Seconds()))
	respond.Redirect(writer, request, "/list")
}

// Logout destroys the current session, if any, and clears the cookie.
//
// Safe to hit without a session: the result is the same logged-out state.
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		if err := handler.authService.DestroySession(request.Context(), cookie.Value); err != nil {
			handler.renderer.Error(writer, request, err)
			return
		}
	}

	handler.setSessionCookie(writer, "", -1)
	respond.RedirectWithFlash(writer, request, "/", flash.Success, "You are logged out")
}

// setSessionCookie writes the session cookie with the hardened attributes.
func (handler *Handler) setSessionCookie(writer http.ResponseWriter, value string, maxAge int) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   handler.secureCookies,
	})
}
