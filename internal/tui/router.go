package tui

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/mindcraft-client/models"
)

// Route patterns. A segment starting with ':' captures one path segment.
const (
	RouteUpload     = "/"
	RouteDashboard  = "/dashboard"
	RouteNotes      = "/notes/:id"
	RouteQuiz       = "/quiz/:id"
	RouteFlashcards = "/flash/:id"
)

// routeTable is matched in order; the first hit wins.
var routeTable = []string{
	RouteUpload,
	RouteDashboard,
	RouteNotes,
	RouteQuiz,
	RouteFlashcards,
}

// RouteParams are the typed parameters extracted from a matched path.
type RouteParams struct {
	DocumentID models.DocumentID
}

// NavigateTo asks the router to mount the page matching Path.
type NavigateTo struct {
	Path string
}

// NotesPath, QuizPath and FlashcardsPath build the artifact routes of a
// document.
func NotesPath(id models.DocumentID) string { return "/notes/" + url.PathEscape(id.String()) }

func QuizPath(id models.DocumentID) string { return "/quiz/" + url.PathEscape(id.String()) }

func FlashcardsPath(id models.DocumentID) string { return "/flash/" + url.PathEscape(id.String()) }

// matchRoute resolves path against the route table. Trailing slashes are
// ignored; empty segments never match a parameter.
func matchRoute(path string) (pattern string, params RouteParams, ok bool) {
	got := splitPath(path)
	for _, pattern := range routeTable {
		if params, ok := matchPattern(splitPath(pattern), got); ok {
			return pattern, params, true
		}
	}
	return "", RouteParams{}, false
}

func matchPattern(pattern, path []string) (RouteParams, bool) {
	if len(pattern) != len(path) {
		return RouteParams{}, false
	}

	var params RouteParams
	for i, seg := range pattern {
		if name, isParam := strings.CutPrefix(seg, ":"); isParam {
			value, err := url.PathUnescape(path[i])
			if err != nil || strings.TrimSpace(value) == "" {
				return RouteParams{}, false
			}
			if name == "id" {
				params.DocumentID = models.DocumentID(value)
			}
			continue
		}
		if seg != path[i] {
			return RouteParams{}, false
		}
	}
	return params, true
}

func splitPath(path string) []string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
