// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

type Form struct {
	Action string   `json:"action"`
	Artist Artist   `json:"artist"`
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

type DeleteResult struct {
	ID           int `json:"id"`
	DeletedShows int `json:"deleted_shows"`
}

type Handler struct {
	service  *Service
	renderer *render.Renderer
	notifier flash.Notifier
}

func NewHandler(service *Service, renderer *render.Renderer, notifier flash.Notifier) *Handler {
	return &Handler{service: service, renderer: renderer, notifier: notifier}
}

// RegisterRoutes mounts the artist pages on a router scoped to /artists.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listArtists)
	router.Get("/search", handler.searchArtists)
	router.Post("/search", handler.searchArtists)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createArtist)
	router.Get("/{id}", handler.showArtist)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateArtist)
	router.Post("/{id}/delete", handler.deleteArtist)
	router.Delete("/{id}", handler.deleteArtist)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.List(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "artists.html", "Artists", artists)
}

func (handler *Handler) searchArtists(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.Search(request.Context(), requestutil.SearchTerm(request))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "search_artists.html", "Artist search", results)
}

func (handler *Handler) showArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Detail(request.Context(), artistID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "artist.html", detail.Name, detail)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, "artist_form.html", "New artist", newForm("/artists/create", Artist{}))
}

func (handler *Handler) createArtist(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeArtist(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		handler.failForm(writer, request, "/artists/create", input, err,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", input.Name))
		return
	}

	if requestutil.WantsJSON(request) {
		respond.Created(writer, input)
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Artist %s was successfully listed!", input.Name)))
	render.Redirect(writer, request, fmt.Sprintf("/artists/%d", input.ID))
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	artist, err := handler.service.Get(request.Context(), artistID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "artist_form.html", "Edit artist",
		newForm(fmt.Sprintf("/artists/%d/edit", artistID), *artist))
}

func (handler *Handler) updateArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input, err := decodeArtist(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), artistID, &input); err != nil {
		handler.failForm(writer, request, fmt.Sprintf("/artists/%d/edit", artistID), input, err,
			fmt.Sprintf("An error occurred. Artist %s could not be updated.", input.Name))
		return
	}

	if requestutil.WantsJSON(request) {
		respond.OK(writer, input)
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Artist %s was successfully updated!", input.Name)))
	render.Redirect(writer, request, fmt.Sprintf("/artists/%d", artistID))
}

func (handler *Handler) deleteArtist(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	removed, err := handler.service.Delete(request.Context(), artistID)
	if err != nil {
		if request.Method == http.MethodDelete {
			respond.Error(writer, request, err)
			return
		}
		handler.notifier.Add(request.Context(), flash.Danger("An error occurred. Artist could not be deleted."))
		handler.renderer.Error(writer, request, err)
		return
	}

	if request.Method == http.MethodDelete || requestutil.WantsJSON(request) {
		respond.OK(writer, DeleteResult{ID: artistID, DeletedShows: removed})
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Artist was successfully deleted along with %d shows.", removed)))
	render.Redirect(writer, request, "/")
}

func (handler *Handler) failForm(writer http.ResponseWriter, request *http.Request, action string, input Artist, err error, notice string) {
	if validate.FieldMessages(err) == nil {
		handler.notifier.Add(request.Context(), flash.Danger(notice))
	}
	handler.renderer.Form(writer, request, "artist_form.html", "Artist", newForm(action, input), err)
}

func newForm(action string, artist Artist) Form {
	if artist.Genres == nil {
		artist.Genres = []string{}
	}
	return Form{Action: action, Artist: artist, Genres: catalog.Genres, States: catalog.States}
}

func decodeArtist(request *http.Request) (Artist, error) {
	var artist Artist

	if requestutil.IsJSONBody(request) {
		if err := requestutil.DecodeJSON(request, &artist); err != nil {
			return Artist{}, err
		}
		return artist, nil
	}

	if err := requestutil.ParseForm(request); err != nil {
		return Artist{}, err
	}

	artist.Name = requestutil.FormString(request, catalog.FieldName)
	artist.City = requestutil.FormString(request, catalog.FieldCity)
	artist.State = requestutil.FormString(request, catalog.FieldState)
	artist.Phone = requestutil.FormString(request, catalog.FieldPhone)
	artist.Genres = requestutil.FormList(request, catalog.FieldGenres)
	artist.ImageLink = requestutil.FormOptional(request, catalog.FieldImageLink)
	artist.Website = requestutil.FormOptional(request, catalog.FieldWebsite)
	artist.FacebookLink = requestutil.FormOptional(request, catalog.FieldFacebookLink)
	artist.SeekingVenue = requestutil.FormBool(request, FieldSeekingVenue)
	artist.SeekingDescription = requestutil.FormOptional(request, catalog.FieldSeekingDescription)

	return artist, nil
}
