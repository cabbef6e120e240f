// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
)

type recordingNotifier struct {
	messages []flash.Message
}

func (notifier *recordingNotifier) Add(_ context.Context, message flash.Message) {
	notifier.messages = append(notifier.messages, message)
}

type stubArtists struct {
	terms []string
}

func (stub *stubArtists) Search(_ context.Context, term string) (catalog.SearchResults, error) {
	stub.terms = append(stub.terms, term)
	return catalog.NewSearchResults(term, []catalog.Entry{{ID: 4, Name: "Guns N Petals"}}), nil
}

type fixture struct {
	repo     *memoryRepository
	notifier *recordingNotifier
	artists  *stubArtists
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	renderer, err := render.New(nil)
	require.NoError(t, err)

	f := &fixture{repo: newMemoryRepository(), notifier: &recordingNotifier{}, artists: &stubArtists{}}
	handler := venue.NewHandler(newService(f.repo), f.artists, renderer, f.notifier)

	router := chi.NewRouter()
	router.Route("/venues", handler.RegisterRoutes)
	f.router = router
	return f
}

func (f *fixture) do(request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, request)
	return recorder
}

func postForm(target string, values url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func fillmoreForm() url.Values {
	return url.Values{
		"name":    {"The Fillmore"},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1805 Geary Blvd"},
		"phone":   {"4155671330"},
		"genres":  {"Rock", "Jazz"},
	}
}

/*
TestHandler_CreateThenList runs the Fillmore flow through the HTML form.
*/
func TestHandler_CreateThenList(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(postForm("/venues/create", fillmoreForm()))
	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues/1", recorder.Header().Get("Location"))
	require.Len(t, f.notifier.messages, 1)
	assert.Equal(t, "Venue The Fillmore was successfully listed!", f.notifier.messages[0].Text)

	created := f.repo.venues[1]
	require.NotNil(t, created)
	assert.Equal(t, []string{"Rock", "Jazz"}, created.Genres)
	assert.False(t, created.SeekingTalent)
	assert.Nil(t, created.Website)

	request := httptest.NewRequest(http.MethodGet, "/venues", nil)
	request.Header.Set("Accept", "application/json")
	recorder = f.do(request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data []venue.Area `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "San Francisco", envelope.Data[0].City)
	assert.Equal(t, "CA", envelope.Data[0].State)
	assert.Equal(t, 0, envelope.Data[0].Venues[0].NumUpcomingShows)
}

func TestHandler_CreateInvalid(t *testing.T) {
	f := newFixture(t)

	form := fillmoreForm()
	form.Del("name")
	recorder := f.do(postForm("/venues/create", form))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "This field is required")
	assert.Contains(t, recorder.Body.String(), `value="1805 Geary Blvd"`)
	assert.Empty(t, f.repo.venues)
	assert.Empty(t, f.notifier.messages)
}

func TestHandler_CreateJSON(t *testing.T) {
	f := newFixture(t)

	request := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(`{
		"name": "The Fillmore", "city": "San Francisco", "state": "CA",
		"address": "1805 Geary Blvd", "phone": "4155671330", "genres": ["rock", "jazz"],
		"seeking_talent": true
	}`))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	recorder := f.do(request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data venue.Venue `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.ID)
	assert.Equal(t, []string{"Rock", "Jazz"}, envelope.Data.Genres)
	assert.True(t, envelope.Data.SeekingTalent)
}

/*
TestHandler_ShowVenue verifies the upcoming show scenario and the booking search.
*/
func TestHandler_ShowVenue(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusSeeOther, f.do(postForm("/venues/create", fillmoreForm())).Code)
	f.repo.shows = []show.Show{{ID: 1, ArtistID: 4, VenueID: 1, StartTime: fixedNow.Add(time.Hour)}}

	request := httptest.NewRequest(http.MethodGet, "/venues/1?artist_search_term=guns", nil)
	request.Header.Set("Accept", "application/json")
	recorder := f.do(request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			ID                 int                    `json:"id"`
			UpcomingShowsCount int                    `json:"upcoming_shows_count"`
			PastShowsCount     int                    `json:"past_shows_count"`
			UpcomingShows      []show.Listing         `json:"upcoming_shows"`
			ArtistSearch       *catalog.SearchResults `json:"artist_search"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.UpcomingShowsCount)
	assert.Equal(t, 0, envelope.Data.PastShowsCount)
	assert.Equal(t, 1, envelope.Data.UpcomingShows[0].ShowID)
	require.NotNil(t, envelope.Data.ArtistSearch)
	assert.Equal(t, 1, envelope.Data.ArtistSearch.Count)
	assert.Equal(t, []string{"guns"}, f.artists.terms)

	html := f.do(httptest.NewRequest(http.MethodGet, "/venues/1", nil))
	require.Equal(t, http.StatusOK, html.Code)
	assert.Contains(t, html.Body.String(), "1 Upcoming Shows")
	assert.Len(t, f.artists.terms, 1, "no artist search without the parameter")
}

func TestHandler_NotFound(t *testing.T) {
	f := newFixture(t)

	for _, target := range []string{"/venues/99", "/venues/abc", "/venues/0", "/venues/-3/edit", "/venues/2147483648"} {
		t.Run(target, func(t *testing.T) {
			recorder := f.do(httptest.NewRequest(http.MethodGet, target, nil))
			assert.Equal(t, http.StatusNotFound, recorder.Code)
		})
	}
}

func TestHandler_EditInPlace(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusSeeOther, f.do(postForm("/venues/create", fillmoreForm())).Code)

	form := f.do(httptest.NewRequest(http.MethodGet, "/venues/1/edit", nil))
	require.Equal(t, http.StatusOK, form.Code)
	assert.Contains(t, form.Body.String(), `value="The Fillmore"`)

	values := fillmoreForm()
	values.Set("name", "The Fillmore Auditorium")
	values.Set("seeking_talent", "y")
	recorder := f.do(postForm("/venues/1/edit", values))

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/venues/1", recorder.Header().Get("Location"))
	assert.Len(t, f.repo.venues, 1)
	assert.Equal(t, "The Fillmore Auditorium", f.repo.venues[1].Name)
	assert.True(t, f.repo.venues[1].SeekingTalent)
}

func TestHandler_Delete(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusSeeOther, f.do(postForm("/venues/create", fillmoreForm())).Code)
	f.repo.shows = []show.Show{{ID: 1, ArtistID: 4, VenueID: 1, StartTime: fixedNow}}

	recorder := f.do(httptest.NewRequest(http.MethodDelete, "/venues/1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":1,"deleted_shows":1}}`, recorder.Body.String())
	assert.Empty(t, f.repo.venues)

	recorder = f.do(httptest.NewRequest(http.MethodDelete, "/venues/1", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_DeleteForm(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusSeeOther, f.do(postForm("/venues/create", fillmoreForm())).Code)

	recorder := f.do(postForm("/venues/1/delete", url.Values{}))
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
	assert.Empty(t, f.repo.venues)
}

func TestHandler_Search(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, http.StatusSeeOther, f.do(postForm("/venues/create", fillmoreForm())).Code)

	recorder := f.do(postForm("/venues/search", url.Values{"search_term": {"fill"}}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Number of search results: 1")

	request := httptest.NewRequest(http.MethodGet, "/venues/search?search_term=zzz", nil)
	request.Header.Set("Accept", "application/json")
	recorder = f.do(request)
	assert.JSONEq(t, `{"data":{"search_term":"zzz","count":0,"data":[]}}`, recorder.Body.String())
}
