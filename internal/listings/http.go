// Copyright (c) 2026 Listora. All rights reserved.
// Author: hoang.vx.dev@gmail.com

package listings

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hoangvx/listora/internal/platform/flash"
	"github.com/hoangvx/listora/internal/platform/middleware"
	requestutil "github.com/hoangvx/listora/internal/platform/request"
	"github.com/hoangvx/listora/internal/platform/respond"
	"github.com/hoangvx/listora/internal/platform/view"
)

// Handler serves the listing pages under /list.
type Handler struct {
	listingService *Service
	renderer       *view.Renderer
}

// NewHandler constructs a new [Handler].
func NewHandler(listingService *Service, renderer *view.Renderer) *Handler {
	return &Handler{
		listingService: listingService,
		renderer:       renderer,
	}
}

// RegisterRoutes mounts the listing routes onto the given router.
//
// Every route sits behind the identity gate. The edit and delete forms reach
// PUT and DELETE through the method-override middleware.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Route("/list", func(listRouter chi.Router) {
		listRouter.Use(middleware.RequireIdentity)

		listRouter.Get("/", handler.Index)
		listRouter.Post("/", handler.Create)
		listRouter.Get("/new", handler.New)
		listRouter.Get("/{id}", handler.Show)
		listRouter.Get("/{id}/edit", handler.Edit)
		listRouter.Put("/{id}", handler.Update)
		listRouter.Delete("/{id}", handler.Delete)
	})
}

// Index renders all listings.
func (handler *Handler) Index(writer http.ResponseWriter, request *http.Request) {
	records, err := handler.listingService.List(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Render(writer, request, http.StatusOK, "listings_index", view.Data{
		Title:   "Listings",
		Content: records,
	})
}

// New renders the creation form.
func (handler *Handler) New(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Render(writer, request, http.StatusOK, "listings_new", view.Data{
		Title: "New listing",
	})
}

// Create processes the creation form. The owner is the session identity;
// whatever the form posted about ownership is discarded with the rest of
// the unknown fields.
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := requestutil.ParseForm(request); err != nil {
		respond.RedirectWithFlash(writer, request, "/list/new", flash.Error, "Invalid form submission")
		return
	}

	input := CreateInput{Title: request.PostFormValue("title")}

	if _, err := handler.listingService.Create(request.Context(), input, *principal); err != nil {
		respond.RedirectWithFlash(writer, request, "/list/new", flash.Error, respond.FlashMessage(err))
		return
	}

	respond.RedirectWithFlash(writer, request, "/list", flash.Success, "New listing created!")
}

// Show renders a single listing with its owner.
func (handler *Handler) Show(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.listingService.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Render(writer, request, http.StatusOK, "listings_show", view.Data{
		Title:   listing.Title,
		Content: listing,
	})
}

// Edit renders the edit form pre-populated with the stored record.
func (handler *Handler) Edit(writer http.ResponseWriter, request *http.Request) {
	listing, err := handler.listingService.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Render(writer, request, http.StatusOK, "listings_edit", view.Data{
		Title:   "Edit " + listing.Title,
		Content: listing,
	})
}

// Update processes the edit form and returns to the record's page.
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")

	if err := requestutil.ParseForm(request); err != nil {
		respond.RedirectWithFlash(writer, request, "/list/"+id+"/edit", flash.Error, "Invalid form submission")
		return
	}

	input := UpdateInput{}
	if request.PostForm.Has("title") {
		title := request.PostFormValue("title")
		input.Title = &title
	}

	if _, err := handler.listingService.Update(request.Context(), id, input, *principal); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/list/"+id)
}

// Delete removes a listing and returns to the index.
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	id := requestutil.ID(request, "id")

	if _, err := handler.listingService.Delete(request.Context(), id, *principal); err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, request, "/list")
}
