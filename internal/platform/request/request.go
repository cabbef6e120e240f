// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the two
body encodings the site accepts (HTML forms and JSON), ensuring consistent
error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/constants"
	"github.com/taibuivan/fyyur/internal/platform/validate"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// maxBodyBytes bounds form and JSON bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ParseForm parses an urlencoded or multipart form body.

Returns:
  - error: validate.ErrInvalidForm if the body is malformed
*/
func ParseForm(request *http.Request) error {
	request.Body = http.MaxBytesReader(nil, request.Body, maxBodyBytes)
	if err := request.ParseForm(); err != nil {
		return validate.ErrInvalidForm
	}
	return nil
}

/*
ID retrieves a named integer URL parameter.

A missing, malformed, non-positive, or out of int4 range id cannot name any
row, so it is reported as not found rather than as a bad request.

Returns:
  - int: The parsed identifier
  - error: apperr.NotFound(resource) if the parameter is not a positive integer
*/
func ID(request *http.Request, name, resource string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(resource)
	}
	return int(id), nil
}

// # Form Fields

// FormString returns the trimmed value of a form field ("" when absent).
func FormString(request *http.Request, name string) string {
	return strings.TrimSpace(request.Form.Get(name))
}

// FormOptional returns nil for an absent or blank field, otherwise the trimmed value.
func FormOptional(request *http.Request, name string) *string {
	value := request.Form.Get(name)
	return pointer.NonBlank(&value)
}

// FormList returns every non-blank value of a repeated field, never nil.
func FormList(request *http.Request, name string) []string {
	values := []string{}
	for _, value := range request.Form[name] {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// FormBool reports whether a checkbox field was submitted with a truthy value.
// An absent field is false.
func FormBool(request *http.Request, name string) bool {
	values, present := request.Form[name]
	if !present {
		return false
	}
	if len(values) == 0 || values[0] == "" {
		return true
	}
	switch strings.ToLower(values[0]) {
	case "false", "0", "off", "n", "no":
		return false
	}
	return true
}

// SearchTerm reads the search term from the form body or, for GET, the query string.
func SearchTerm(request *http.Request) string {
	if err := request.ParseForm(); err != nil {
		return ""
	}
	return strings.TrimSpace(request.Form.Get(constants.FormSearchTerm))
}

// # Content Negotiation

// IsJSONBody reports whether the request body is declared as JSON.
func IsJSONBody(request *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(request.Header.Get(constants.HeaderContentType))
	return err == nil && mediaType == "application/json"
}

// WantsJSON reports whether the client asked for a JSON response instead of HTML.
func WantsJSON(request *http.Request) bool {
	for _, part := range strings.Split(request.Header.Get(constants.HeaderAccept), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}
