// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// ArtistSearcher finds artists to book from the venue page.
type ArtistSearcher interface {
	Search(ctx context.Context, term string) (catalog.SearchResults, error)
}

// Form is the data behind the create and edit pages.
type Form struct {
	Action string   `json:"action"`
	Venue  Venue    `json:"venue"`
	Genres []string `json:"genres"`
	States []string `json:"states"`
}

// DeleteResult reports a completed delete.
type DeleteResult struct {
	ID           int `json:"id"`
	DeletedShows int `json:"deleted_shows"`
}

type Handler struct {
	service  *Service
	artists  ArtistSearcher
	renderer *render.Renderer
	notifier flash.Notifier
}

func NewHandler(service *Service, artists ArtistSearcher, renderer *render.Renderer, notifier flash.Notifier) *Handler {
	return &Handler{service: service, artists: artists, renderer: renderer, notifier: notifier}
}

// RegisterRoutes mounts the venue pages on a router scoped to /venues.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listVenues)
	router.Get("/search", handler.searchVenues)
	router.Post("/search", handler.searchVenues)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createVenue)
	router.Get("/{id}", handler.showVenue)
	router.Get("/{id}/edit", handler.editForm)
	router.Post("/{id}/edit", handler.updateVenue)
	router.Post("/{id}/delete", handler.deleteVenue)
	router.Delete("/{id}", handler.deleteVenue)
}

func (handler *Handler) listVenues(writer http.ResponseWriter, request *http.Request) {
	areas, err := handler.service.ListByArea(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "venues.html", "Venues", areas)
}

func (handler *Handler) searchVenues(writer http.ResponseWriter, request *http.Request) {
	results, err := handler.service.Search(request.Context(), requestutil.SearchTerm(request))
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "search_venues.html", "Venue search", results)
}

func (handler *Handler) showVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Detail(request.Context(), venueID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	page := Page{Detail: detail}

	// Booking helper: list artists matching artist_search_term, when given.
	if query := request.URL.Query(); query.Has(constants.FormArtistSearchTerm) {
		results, err := handler.artists.Search(request.Context(), query.Get(constants.FormArtistSearchTerm))
		if err != nil {
			handler.renderer.Error(writer, request, err)
			return
		}
		page.ArtistSearch = &results
	}

	handler.renderer.Page(writer, request, http.StatusOK, "venue.html", detail.Name, page)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, "venue_form.html", "New venue", newForm("/venues/create", Venue{}))
}

func (handler *Handler) createVenue(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeVenue(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.Create(request.Context(), &input); err != nil {
		handler.failForm(writer, request, "/venues/create", input, err,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", input.Name))
		return
	}

	if requestutil.WantsJSON(request) {
		respond.Created(writer, input)
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Venue %s was successfully listed!", input.Name)))
	render.Redirect(writer, request, fmt.Sprintf("/venues/%d", input.ID))
}

func (handler *Handler) editForm(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	venue, err := handler.service.Get(request.Context(), venueID)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "venue_form.html", "Edit venue",
		newForm(fmt.Sprintf("/venues/%d/edit", venueID), *venue))
}

func (handler *Handler) updateVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	input, err := decodeVenue(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), venueID, &input); err != nil {
		handler.failForm(writer, request, fmt.Sprintf("/venues/%d/edit", venueID), input, err,
			fmt.Sprintf("An error occurred. Venue %s could not be updated.", input.Name))
		return
	}

	if requestutil.WantsJSON(request) {
		respond.OK(writer, input)
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Venue %s was successfully updated!", input.Name)))
	render.Redirect(writer, request, fmt.Sprintf("/venues/%d", venueID))
}

func (handler *Handler) deleteVenue(writer http.ResponseWriter, request *http.Request) {
	venueID, err := requestutil.ID(request, "id", resource)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	removed, err := handler.service.Delete(request.Context(), venueID)
	if err != nil {
		if request.Method == http.MethodDelete {
			respond.Error(writer, request, err)
			return
		}
		handler.notifier.Add(request.Context(), flash.Danger("An error occurred. Venue could not be deleted."))
		handler.renderer.Error(writer, request, err)
		return
	}

	if request.Method == http.MethodDelete || requestutil.WantsJSON(request) {
		respond.OK(writer, DeleteResult{ID: venueID, DeletedShows: removed})
		return
	}

	handler.notifier.Add(request.Context(), flash.Success(fmt.Sprintf("Venue was successfully deleted along with %d shows.", removed)))
	render.Redirect(writer, request, "/")
}

// failForm re-renders a rejected form, or flashes the failure for anything but validation.
func (handler *Handler) failForm(writer http.ResponseWriter, request *http.Request, action string, input Venue, err error, notice string) {
	if validate.FieldMessages(err) == nil {
		handler.notifier.Add(request.Context(), flash.Danger(notice))
	}
	handler.renderer.Form(writer, request, "venue_form.html", "Venue", newForm(action, input), err)
}

func newForm(action string, venue Venue) Form {
	if venue.Genres == nil {
		venue.Genres = []string{}
	}
	return Form{Action: action, Venue: venue, Genres: catalog.Genres, States: catalog.States}
}

// decodeVenue reads a venue from a JSON body or a submitted form.
// Absent optional fields become nil, absent genres an empty list, absent checkboxes false.
func decodeVenue(request *http.Request) (Venue, error) {
	var venue Venue

	if requestutil.IsJSONBody(request) {
		if err := requestutil.DecodeJSON(request, &venue); err != nil {
			return Venue{}, err
		}
		return venue, nil
	}

	if err := requestutil.ParseForm(request); err != nil {
		return Venue{}, err
	}

	venue.Name = requestutil.FormString(request, catalog.FieldName)
	venue.City = requestutil.FormString(request, catalog.FieldCity)
	venue.State = requestutil.FormString(request, catalog.FieldState)
	venue.Address = requestutil.FormString(request, FieldAddress)
	venue.Phone = requestutil.FormString(request, catalog.FieldPhone)
	venue.Genres = requestutil.FormList(request, catalog.FieldGenres)
	venue.ImageLink = requestutil.FormOptional(request, catalog.FieldImageLink)
	venue.Website = requestutil.FormOptional(request, catalog.FieldWebsite)
	venue.FacebookLink = requestutil.FormOptional(request, catalog.FieldFacebookLink)
	venue.SeekingTalent = requestutil.FormBool(request, FieldSeekingTalent)
	venue.SeekingDescription = requestutil.FormOptional(request, catalog.FieldSeekingDescription)

	return venue, nil
}
