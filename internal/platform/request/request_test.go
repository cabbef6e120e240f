// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
)

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, requestutil.ParseForm(request))
	return request
}

/*
TestFormHelpers verifies defaulting of absent optional fields.
*/
func TestFormHelpers(t *testing.T) {
	request := formRequest(t, url.Values{
		"name":           {"  The Fillmore "},
		"website":        {"   "},
		"genres":         {"Rock n Roll", "", "Jazz"},
		"seeking_talent": {"y"},
	})

	assert.Equal(t, "The Fillmore", requestutil.FormString(request, "name"))
	assert.Nil(t, requestutil.FormOptional(request, "website"))
	assert.Nil(t, requestutil.FormOptional(request, "image_link"))
	assert.Equal(t, []string{"Rock n Roll", "Jazz"}, requestutil.FormList(request, "genres"))
	assert.NotNil(t, requestutil.FormList(request, "missing"))
	assert.True(t, requestutil.FormBool(request, "seeking_talent"))
	assert.False(t, requestutil.FormBool(request, "seeking_venue"))
}

func TestFormBool_Values(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"on", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"off", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			request := formRequest(t, url.Values{"flag": {tt.value}})
			assert.Equal(t, tt.want, requestutil.FormBool(request, "flag"))
		})
	}
}

/*
TestID verifies that malformed ids map to not-found.
*/
func TestID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
		{"2147483647", 2147483647, false},
		{"2147483648", 0, true},
		{"3000000000", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			routeContext := chi.NewRouteContext()
			routeContext.URLParams.Add("id", tt.raw)
			request := httptest.NewRequest(http.MethodGet, "/venues/"+tt.raw, nil)
			request = request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))

			id, err := requestutil.ID(request, "id", "Venue")
			if tt.wantErr {
				assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestNegotiation(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/venues", nil)
	assert.False(t, requestutil.WantsJSON(request))

	request.Header.Set("Accept", "text/html, application/json;q=0.9")
	assert.True(t, requestutil.WantsJSON(request))

	request.Header.Set("Content-Type", "application/json; charset=utf-8")
	assert.True(t, requestutil.IsJSONBody(request))
}

func TestSearchTerm(t *testing.T) {
	post := formRequest(t, url.Values{"search_term": {" Music "}})
	assert.Equal(t, "Music", requestutil.SearchTerm(post))

	get := httptest.NewRequest(http.MethodGet, "/venues/search?search_term=hop", nil)
	assert.Equal(t, "hop", requestutil.SearchTerm(get))
}
