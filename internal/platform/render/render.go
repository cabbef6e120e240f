// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package render produces the site's HTML pages and their JSON twins.

Every page is a named template under templates/pages, executed inside the shared
layout. A request that sends "Accept: application/json" receives the page data
in the standard [respond.SuccessEnvelope] instead, so every route doubles as an API.

Error pages:

  - NOT_FOUND: errors/404.html
  - 5xx: errors/500.html (the cause is logged, never shown)
  - anything else: errors/error.html with the client-safe message
*/
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/ctxutil"
	"github.com/taibuivan/fyyur/internal/platform/flash"
	requestutil "github.com/taibuivan/fyyur/internal/platform/request"
	"github.com/taibuivan/fyyur/internal/platform/respond"
	"github.com/taibuivan/fyyur/internal/platform/validate"
)

//go:embed templates
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// FlashSource drains the pending notices of the current request's session.
type FlashSource interface {
	Pop(ctx context.Context) []flash.Message
}

// View is the root value every template is executed with.
type View struct {
	Title     string
	Flashes   []flash.Message
	Errors    map[string]string
	RequestID string
	Data      any
}

// Renderer executes the embedded templates.
type Renderer struct {
	pages   map[string]*template.Template
	flashes FlashSource
}

/*
New parses the layout together with every page and error template.

Parameters:
  - flashes: FlashSource (may be nil; pages then render without notices)

Returns:
  - *Renderer: ready to serve
  - error: Any template parse failure
*/
func New(flashes FlashSource) (*Renderer, error) {
	renderer := &Renderer{pages: map[string]*template.Template{}, flashes: flashes}

	for _, dir := range []string{"templates/pages", "templates/errors"} {
		entries, err := fs.ReadDir(templateFS, dir)
		if err != nil {
			return nil, fmt.Errorf("render: read %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			file := path.Join(dir, entry.Name())
			page, err := template.New(path.Base(layoutFile)).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
			if err != nil {
				return nil, fmt.Errorf("render: parse %s: %w", file, err)
			}

			// Pages are keyed relative to templates/, e.g. "pages/venue.html".
			renderer.pages[path.Join(path.Base(dir), entry.Name())] = page
		}
	}

	return renderer, nil
}

// Page writes the named page, or its data as JSON when the client asked for it.
func (renderer *Renderer) Page(writer http.ResponseWriter, request *http.Request, status int, name, title string, data any) {
	if requestutil.WantsJSON(request) {
		respond.JSON(writer, status, respond.SuccessEnvelope{Data: data})
		return
	}

	renderer.html(writer, request, status, "pages/"+name, View{Title: title, Data: data})
}

/*
Form re-renders a form page after a failed submission.

Validation failures are shown next to their fields with status 400; any other
error is delegated to [Renderer.Error]. JSON clients always get the error envelope.
*/
func (renderer *Renderer) Form(writer http.ResponseWriter, request *http.Request, name, title string, data any, err error) {
	fields := validate.FieldMessages(err)
	if fields == nil || requestutil.WantsJSON(request) {
		renderer.Error(writer, request, err)
		return
	}

	renderer.html(writer, request, http.StatusBadRequest, "pages/"+name, View{Title: title, Errors: fields, Data: data})
}

// Error writes the error page matching err.
func (renderer *Renderer) Error(writer http.ResponseWriter, request *http.Request, err error) {
	if requestutil.WantsJSON(request) {
		respond.Error(writer, request, err)
		return
	}

	appError := respond.Classify(request, err)
	renderer.html(writer, request, appError.HTTPStatus, errorPage(appError), View{
		Title: http.StatusText(appError.HTTPStatus),
		Data:  appError,
	})
}

// NotFound serves the 404 page for unmatched routes.
func (renderer *Renderer) NotFound(writer http.ResponseWriter, request *http.Request) {
	renderer.Error(writer, request, apperr.NotFound("Page"))
}

// MethodNotAllowed serves the generic error page with status 405.
func (renderer *Renderer) MethodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	renderer.Error(writer, request, &apperr.AppError{
		Code:       "METHOD_NOT_ALLOWED",
		Message:    "Method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	})
}

// Redirect answers a successful form post with 303 See Other.
func Redirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

func errorPage(appError *apperr.AppError) string {
	switch {
	case appError.Code == apperr.CodeNotFound:
		return "errors/404.html"
	case appError.HTTPStatus >= http.StatusInternalServerError:
		return "errors/500.html"
	default:
		return "errors/error.html"
	}
}

// html executes a page into a buffer first so a template failure can still
// produce a clean 500 instead of a half-written page.
func (renderer *Renderer) html(writer http.ResponseWriter, request *http.Request, status int, name string, view View) {
	page, ok := renderer.pages[name]
	if !ok {
		renderer.fail(writer, request, fmt.Errorf("render: unknown page %q", name))
		return
	}

	view.RequestID = ctxutil.GetRequestID(request.Context())
	if renderer.flashes != nil {
		view.Flashes = renderer.flashes.Pop(request.Context())
	}

	var buffer bytes.Buffer
	if err := page.ExecuteTemplate(&buffer, path.Base(layoutFile), view); err != nil {
		renderer.fail(writer, request, fmt.Errorf("render: execute %s: %w", name, err))
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(status)
	_, _ = buffer.WriteTo(writer)
}

// fail is the last resort when a page itself cannot be rendered.
func (renderer *Renderer) fail(writer http.ResponseWriter, request *http.Request, err error) {
	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "render_failed", slog.Any("error", err))

	page, ok := renderer.pages["errors/500.html"]
	var buffer bytes.Buffer
	if ok && page.ExecuteTemplate(&buffer, path.Base(layoutFile), View{Title: "Server Error"}) == nil {
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		writer.WriteHeader(http.StatusInternalServerError)
		_, _ = buffer.WriteTo(writer)
		return
	}

	http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
}
