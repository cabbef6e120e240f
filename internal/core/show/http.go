// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package show

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

// Form holds the submitted values as typed, so a rejected form can be shown again.
type Form struct {
	ArtistID  string `json:"artist_id"`
	VenueID   string `json:"venue_id"`
	StartTime string `json:"start_time"`
}

// jsonInput is the JSON body accepted by POST /shows/create.
type jsonInput struct {
	ArtistID  int    `json:"artist_id"`
	VenueID   int    `json:"venue_id"`
	StartTime string `json:"start_time"`
}

// Parse converts the form into a [Show]. Zone-less times are read in location.
func (form Form) Parse(location *time.Location) (*Show, error) {
	validator := &validate.Validator{}

	artistID, err := parseID(form.ArtistID)
	validator.Custom(FieldArtistID, err != nil || !validate.IsID(artistID), "Must be a valid id")

	venueID, err := parseID(form.VenueID)
	validator.Custom(FieldVenueID, err != nil || !validate.IsID(venueID), "Must be a valid id")

	startTime, err := ParseStartTime(form.StartTime, location)
	validator.Custom(FieldStartTime, err != nil, "Must be a date and time")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, nil
}

// parseID reads a key column value; anything outside int4 is an error.
func parseID(raw string) (int, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	return int(id), err
}

type Handler struct {
	service  *Service
	renderer *render.Renderer
	notifier flash.Notifier
	location *time.Location
}

func NewHandler(service *Service, renderer *render.Renderer, notifier flash.Notifier, location *time.Location) *Handler {
	return &Handler{service: service, renderer: renderer, notifier: notifier, location: location}
}

// RegisterRoutes mounts the show pages on a router scoped to /shows.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listShows)
	router.Get("/create", handler.createForm)
	router.Post("/create", handler.createShow)
}

func (handler *Handler) listShows(writer http.ResponseWriter, request *http.Request) {
	listings, err := handler.service.Upcoming(request.Context())
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, http.StatusOK, "shows.html", "Shows", listings)
}

func (handler *Handler) createForm(writer http.ResponseWriter, request *http.Request) {
	handler.renderer.Page(writer, request, http.StatusOK, "show_form.html", "New show", Form{})
}

func (handler *Handler) createShow(writer http.ResponseWriter, request *http.Request) {
	form, err := handler.decodeForm(request)
	if err != nil {
		handler.renderer.Error(writer, request, err)
		return
	}

	show, err := form.Parse(handler.location)
	if err == nil {
		err = handler.service.Create(request.Context(), show)
	}

	if err != nil {
		if validate.FieldMessages(err) == nil {
			handler.notifier.Add(request.Context(), flash.Danger("An error occurred. Show could not be listed."))
		}
		handler.renderer.Form(writer, request, "show_form.html", "New show", form, err)
		return
	}

	if requestutil.WantsJSON(request) {
		respond.Created(writer, show)
		return
	}

	handler.notifier.Add(request.Context(), flash.Success("Show was successfully listed!"))
	render.Redirect(writer, request, "/shows")
}

func (handler *Handler) decodeForm(request *http.Request) (Form, error) {
	if requestutil.IsJSONBody(request) {
		var input jsonInput
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			return Form{}, err
		}
		return Form{
			ArtistID:  strconv.Itoa(input.ArtistID),
			VenueID:   strconv.Itoa(input.VenueID),
			StartTime: input.StartTime,
		}, nil
	}

	if err := requestutil.ParseForm(request); err != nil {
		return Form{}, err
	}

	return Form{
		ArtistID:  requestutil.FormString(request, FieldArtistID),
		VenueID:   requestutil.FormString(request, FieldVenueID),
		StartTime: requestutil.FormString(request, FieldStartTime),
	}, nil
}
