// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/catalog"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	"github.com/taibuivan/fyyur/internal/platform/render"
)

type recordingNotifier struct {
	messages []flash.Message
}

func (notifier *recordingNotifier) Add(_ context.Context, message flash.Message) {
	notifier.messages = append(notifier.messages, message)
}

func newRouter(t *testing.T, repo artist.Repository, notifier flash.Notifier) http.Handler {
	t.Helper()

	renderer, err := render.New(nil)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Route("/artists", artist.NewHandler(newService(repo), renderer, notifier).RegisterRoutes)
	return router
}

func artistForm() url.Values {
	return url.Values{
		"name":          {"Matt Quevedo"},
		"city":          {"New York"},
		"state":         {"NY"},
		"phone":         {"300-400-5000"},
		"genres":        {"Jazz"},
		"facebook_link": {"https://www.facebook.com/mattquevedo923251523"},
		"seeking_venue": {"y"},
	}
}

func post(router http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_CreateListShow covers the form round trip through the list and detail pages.
*/
func TestHandler_CreateListShow(t *testing.T) {
	repo := newMemoryRepository()
	notifier := &recordingNotifier{}
	router := newRouter(t, repo, notifier)

	recorder := post(router, "/artists/create", artistForm())
	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/artists/1", recorder.Header().Get("Location"))
	assert.Equal(t, "Artist Matt Quevedo was successfully listed!", notifier.messages[0].Text)
	assert.True(t, repo.artists[1].SeekingVenue)

	list := httptest.NewRecorder()
	router.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/artists", nil))
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "Matt Quevedo")

	request := httptest.NewRequest(http.MethodGet, "/artists/1", nil)
	request.Header.Set("Accept", "application/json")
	detail := httptest.NewRecorder()
	router.ServeHTTP(detail, request)
	require.Equal(t, http.StatusOK, detail.Code)

	var envelope struct {
		Data artist.Detail `json:"data"`
	}
	require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &envelope))
	assert.Equal(t, "Matt Quevedo", envelope.Data.Name)
	assert.Equal(t, []string{"Jazz"}, envelope.Data.Genres)
	assert.NotNil(t, envelope.Data.PastShows)
}

func TestHandler_EditPreservesID(t *testing.T) {
	repo := newMemoryRepository()
	router := newRouter(t, repo, &recordingNotifier{})
	require.Equal(t, http.StatusSeeOther, post(router, "/artists/create", artistForm()).Code)

	values := artistForm()
	values.Set("city", "Brooklyn")
	values.Del("seeking_venue")
	recorder := post(router, "/artists/1/edit", values)

	require.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Len(t, repo.artists, 1)
	assert.Equal(t, "Brooklyn", repo.artists[1].City)
	assert.False(t, repo.artists[1].SeekingVenue)
}

func TestHandler_InvalidPhone(t *testing.T) {
	repo := newMemoryRepository()
	router := newRouter(t, repo, &recordingNotifier{})

	values := artistForm()
	values.Set("phone", "call me")
	recorder := post(router, "/artists/create", values)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Must be a valid phone number")
	assert.Empty(t, repo.artists)
}

func TestHandler_SearchAndMissing(t *testing.T) {
	repo := newMemoryRepository()
	router := newRouter(t, repo, &recordingNotifier{})
	require.Equal(t, http.StatusSeeOther, post(router, "/artists/create", artistForm()).Code)

	request := httptest.NewRequest(http.MethodGet, "/artists/search?search_term=QUEV", nil)
	request.Header.Set("Accept", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var envelope struct {
		Data catalog.SearchResults `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Count)

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/artists/42", nil))
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), "Artist not found")
}
