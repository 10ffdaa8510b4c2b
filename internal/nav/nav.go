// Package nav maps in-app deep links to screen destinations.
//
// Links look like URL paths:
//
//	/                                  home composition
//	/composition/about/team?preview=1  composition by route
//	/composition?compositionId=abc     composition by id
//	/service-detail?id=aid&label=...   service placeholder
//	/routes                            route list
//	/logs                              log tail
//
// Renderers emit these as button targets; the ui resolves them with Parse.
package nav

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// Kind identifies the screen a link opens.
type Kind int

const (
	KindComposition Kind = iota
	KindServiceDetail
	KindRoutes
	KindLogs
)

// ErrUnknownLink is returned for links no route matches.
var ErrUnknownLink = errors.New("unknown link")

// Route is a parsed deep link.
type Route struct {
	Kind          Kind
	Path          []string
	CompositionID string
	Preview       bool
	ServiceID     string
	Label         string
}

const (
	routeHome          = "home"
	routeComposition   = "composition"
	routeServiceDetail = "service-detail"
	routeRoutes        = "routes"
	routeLogs          = "logs"
)

var router = newRouter()

func newRouter() *mux.Router {
	r := mux.NewRouter()
	r.Path("/").Name(routeHome)
	r.Path("/composition").Name(routeComposition)
	r.Path("/composition/{path:.*}").Name(routeComposition)
	r.Path("/service-detail").Name(routeServiceDetail)
	r.Path("/routes").Name(routeRoutes)
	r.Path("/logs").Name(routeLogs)
	return r
}

// Parse resolves a deep link.
func Parse(link string) (Route, error) {
	trimmed := strings.TrimSpace(link)
	if trimmed == "" {
		trimmed = "/"
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return Route{}, fmt.Errorf("parse link %q: %w", link, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return Route{}, fmt.Errorf("%w: %q is external", ErrUnknownLink, link)
	}
	if !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}

	req := &http.Request{Method: http.MethodGet, URL: u}
	var match mux.RouteMatch
	if !router.Match(req, &match) || match.Route == nil {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownLink, link)
	}

	q := u.Query()
	switch match.Route.GetName() {
	case routeHome:
		return Route{Kind: KindComposition, Preview: parseBool(q.Get("preview"))}, nil
	case routeComposition:
		return Route{
			Kind:          KindComposition,
			Path:          Segments(match.Vars["path"]),
			CompositionID: strings.TrimSpace(q.Get("compositionId")),
			Preview:       parseBool(q.Get("preview")),
		}, nil
	case routeServiceDetail:
		return Route{
			Kind:      KindServiceDetail,
			ServiceID: q.Get("id"),
			Label:     q.Get("label"),
		}, nil
	case routeRoutes:
		return Route{Kind: KindRoutes}, nil
	case routeLogs:
		return Route{Kind: KindLogs}, nil
	}
	return Route{}, fmt.Errorf("%w: %q", ErrUnknownLink, link)
}

// Link renders the route back into a deep link.
func (r Route) Link() string {
	switch r.Kind {
	case KindServiceDetail:
		return ServiceDetailLink(r.ServiceID, r.Label)
	case KindRoutes:
		return "/routes"
	case KindLogs:
		return "/logs"
	}
	values := url.Values{}
	if r.CompositionID != "" {
		values.Set("compositionId", r.CompositionID)
	}
	if r.Preview {
		values.Set("preview", "true")
	}
	link := CompositionLink(r.Path)
	if len(values) > 0 {
		link += "?" + values.Encode()
	}
	return link
}

// DisplayPath returns the route path for messages, e.g. "/about/team" or
// "/root" for the home composition.
func (r Route) DisplayPath() string {
	if len(r.Path) == 0 {
		return "/root"
	}
	return "/" + strings.Join(r.Path, "/")
}

// CompositionLink builds a link to the composition at the given segments.
func CompositionLink(segments []string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			escaped = append(escaped, url.PathEscape(s))
		}
	}
	if len(escaped) == 0 {
		return "/composition"
	}
	return "/composition/" + strings.Join(escaped, "/")
}

// ServiceDetailLink builds a link to the service placeholder screen.
func ServiceDetailLink(id, label string) string {
	values := url.Values{}
	values.Set("id", id)
	if label != "" {
		values.Set("label", label)
	}
	return "/service-detail?" + values.Encode()
}

// Segments splits a slash separated path into non-empty segments.
func Segments(path string) []string {
	var out []string
	for _, part := range strings.Split(path, "/") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
