package fetch

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/uniterm/internal/canvas"
)

type fakeFetcher struct {
	bySlug  map[string]*canvas.ComponentInstance
	errs    map[string]error
	byID    map[string]*canvas.ComponentInstance
	list    []canvas.ListEntry
	listErr error

	slugs  []string
	states []canvas.State
}

func (f *fakeFetcher) CompositionBySlug(_ context.Context, slug string, state canvas.State) (*canvas.ComponentInstance, error) {
	f.slugs = append(f.slugs, slug)
	f.states = append(f.states, state)
	if err := f.errs[slug]; err != nil {
		return nil, err
	}
	return f.bySlug[slug], nil
}

func (f *fakeFetcher) CompositionByID(_ context.Context, id string, state canvas.State) (*canvas.ComponentInstance, error) {
	f.states = append(f.states, state)
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	return f.byID[id], nil
}

func (f *fakeFetcher) CompositionList(context.Context, canvas.State) ([]canvas.ListEntry, error) {
	return f.list, f.listErr
}

func notFound() error {
	return &canvas.APIError{Endpoint: "/api/v1/canvas", StatusCode: http.StatusNotFound}
}

func TestSlugVariants(t *testing.T) {
	cases := []struct {
		path []string
		want []string
	}{
		{nil, []string{"/"}},
		{[]string{"", " "}, []string{"/"}},
		{[]string{"about"}, []string{"/about", "about"}},
		{[]string{"about", "team"}, []string{"/about/team", "about/team"}},
		{[]string{"/about/", "team"}, []string{"/about/team", "about/team"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, SlugVariants(tc.path)); diff != "" {
			t.Fatalf("SlugVariants(%q) mismatch (-want +got):\n%s", tc.path, diff)
		}
	}
}

func TestByRoute_FallsBackToSecondVariant(t *testing.T) {
	f := &fakeFetcher{
		errs:   map[string]error{"/about": notFound()},
		bySlug: map[string]*canvas.ComponentInstance{"about": {ID: "about", Type: "page"}},
	}
	core, logs := observer.New(zap.DebugLevel)
	svc := NewService(f, zap.New(core))

	comp, err := svc.ByRoute(context.Background(), []string{"about"}, Options{})
	if err != nil {
		t.Fatalf("ByRoute returned error: %v", err)
	}
	if comp.ID != "about" {
		t.Fatalf("ByRoute = %#v, want about", comp)
	}
	if diff := cmp.Diff([]string{"/about", "about"}, f.slugs); diff != "" {
		t.Fatalf("slugs tried mismatch (-want +got):\n%s", diff)
	}
	if f.states[0] != canvas.StatePublished {
		t.Fatalf("state = %v, want published", f.states[0])
	}
	if logs.FilterMessage("api error with slug variant").Len() != 1 {
		t.Fatalf("expected one api error log, got %v", logs.All())
	}
	if logs.FilterMessage("composition loaded").Len() != 1 {
		t.Fatalf("expected composition loaded log")
	}
}

func TestByRoute_PreviewUsesDraftState(t *testing.T) {
	f := &fakeFetcher{bySlug: map[string]*canvas.ComponentInstance{"/": {Type: "page"}}}
	if _, err := NewService(f, nil).ByRoute(context.Background(), nil, Options{Preview: true}); err != nil {
		t.Fatalf("ByRoute returned error: %v", err)
	}
	if len(f.states) != 1 || f.states[0] != canvas.StateDraft {
		t.Fatalf("states = %v, want [draft]", f.states)
	}
}

func TestByRoute_AllVariantsMissIsNotFound(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{"/gone": notFound()}}
	_, err := NewService(f, nil).ByRoute(context.Background(), []string{"gone"}, Options{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if len(f.slugs) != 2 {
		t.Fatalf("tried %d slugs, want 2", len(f.slugs))
	}
}

func TestByRoute_OtherFailuresAreJoined(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{
		"/x": errors.New("connection refused"),
		"x":  notFound(),
	}}
	_, err := NewService(f, nil).ByRoute(context.Background(), []string{"x"}, Options{})
	if err == nil {
		t.Fatalf("ByRoute returned nil error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("error %v should not match ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), `slug "/x": connection refused`) {
		t.Fatalf("error = %q, want it to name the failed slug", err.Error())
	}
}

func TestByRoute_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := &fakeFetcher{}
	if _, err := NewService(f, nil).ByRoute(ctx, []string{"a"}, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if len(f.slugs) != 0 {
		t.Fatalf("no request should be made after cancellation")
	}
}

func TestByID(t *testing.T) {
	f := &fakeFetcher{
		byID: map[string]*canvas.ComponentInstance{"abc": {ID: "abc", Type: "page"}},
		errs: map[string]error{"bad": errors.New("boom")},
	}
	svc := NewService(f, nil)

	comp, err := svc.ByID(context.Background(), "abc", Options{Preview: true})
	if err != nil || comp.ID != "abc" {
		t.Fatalf("ByID = %#v, %v", comp, err)
	}
	if f.states[0] != canvas.StateDraft {
		t.Fatalf("state = %v, want draft", f.states[0])
	}
	if _, err := svc.ByID(context.Background(), "missing", Options{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if _, err := svc.ByID(context.Background(), "bad", Options{}); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error = %v, want boom", err)
	}
}

func TestRoutes(t *testing.T) {
	f := &fakeFetcher{list: []canvas.ListEntry{
		{Composition: canvas.ComponentInstance{ID: "1", Slug: "/"}},
		{Composition: canvas.ComponentInstance{ID: "2"}},
		{Composition: canvas.ComponentInstance{ID: "3", Slug: "/about"}},
		{Path: "/about/team", Composition: canvas.ComponentInstance{ID: "4"}},
	}}
	routes, err := NewService(f, nil).Routes(context.Background())
	if err != nil {
		t.Fatalf("Routes returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"/", "/about", "/about/team"}, routes); diff != "" {
		t.Fatalf("Routes mismatch (-want +got):\n%s", diff)
	}

	f.listErr = errors.New("down")
	if _, err := NewService(f, nil).Routes(context.Background()); err == nil || !strings.Contains(err.Error(), "list compositions") {
		t.Fatalf("error = %v, want wrapped list error", err)
	}
}
