// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package directory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
)

type Handler struct {
	service  *Service
	renderer *render.Renderer
}

func NewHandler(service *Service, renderer *render.Renderer) *Handler {
	return &Handler{service: service, renderer: renderer}
}

// RegisterHome mounts the home page on the root router.
func (handler *Handler) RegisterHome(router chi.Router) {
	router.Get("/", handler.home)
}

// RegisterShowSearch mounts the show search on a router scoped to /shows.
func (handler *Handler) RegisterShowSearch(router chi.Router) {
	router.Get("/search", handler.searchShows)
	router.Post("/search", handler.searchShows)
}

func (handler *Handler) home(writer http.ResponseWriter, request *http.Request) {
	home, err := handler.service.Home(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "home.html", "", home)
}

func (handler *Handler) searchShows(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.SearchShows(request.Context(), requestutil.SearchTerm(request))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "show_search.html", "Show search", results)
}
