// Package fetch resolves routes and ids to composition trees on top of the
// Canvas API client.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/canvas"
)

// ErrNotFound is matched when no slug variant yields a composition.
var ErrNotFound = canvas.ErrNotFound

// Options select which revision to load.
type Options struct {
	Preview bool
	// Refresh marks user-initiated reloads in the log.
	Refresh bool
}

// Service loads compositions for screens.
type Service struct {
	client canvas.CompositionFetcher
	logger *zap.Logger
}

// NewService wraps a Canvas client. A nil logger disables logging.
func NewService(client canvas.CompositionFetcher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{client: client, logger: logger.Named("fetch")}
}

// SlugVariants returns the slugs tried for a route path, in order: with a
// leading slash, then without. The root path only has "/".
func SlugVariants(path []string) []string {
	segments := make([]string, 0, len(path))
	for _, p := range path {
		if p = strings.Trim(strings.TrimSpace(p), "/"); p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return []string{"/"}
	}
	joined := strings.Join(segments, "/")
	return []string{"/" + joined, joined}
}

// ByRoute returns the composition for a route path, trying each slug variant
// in turn. Failures on one variant are logged and the next is tried. When
// every variant misses the error matches ErrNotFound; when any variant failed
// for another reason the attempt errors are returned joined.
func (s *Service) ByRoute(ctx context.Context, path []string, opts Options) (*canvas.ComponentInstance, error) {
	state := canvas.StateFor(opts.Preview)
	logger := s.logger.With(
		zap.String("load_id", uuid.NewString()),
		zap.Strings("path", path),
		zap.Stringer("state", state),
		zap.Bool("preview", opts.Preview),
		zap.Bool("refresh", opts.Refresh),
	)

	variants := SlugVariants(path)
	var failures []error
	for _, slug := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("fetching composition", zap.String("slug", slug))
		start := time.Now()
		comp, err := s.client.CompositionBySlug(ctx, slug, state)
		if err != nil {
			var apiErr *canvas.APIError
			if errors.As(err, &apiErr) {
				logger.Warn("api error with slug variant",
					zap.String("slug", slug),
					zap.Int("status", apiErr.StatusCode),
					zap.String("message", apiErr.Message),
				)
			} else {
				logger.Warn("error with slug variant", zap.String("slug", slug), zap.Error(err))
			}
			if !errors.Is(err, canvas.ErrNotFound) {
				failures = append(failures, fmt.Errorf("slug %q: %w", slug, err))
			}
			continue
		}
		if comp == nil {
			logger.Debug("no composition for slug variant", zap.String("slug", slug))
			continue
		}
		logger.Info("composition loaded",
			zap.String("slug", slug),
			zap.String("composition_id", comp.ID),
			zap.String("type", comp.Type),
			zap.Int("nodes", comp.Count()),
			zap.Duration("elapsed", time.Since(start)),
		)
		return comp, nil
	}

	logger.Error("all slug variants failed", zap.Strings("slugs", variants), zap.Int("failures", len(failures)))
	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}
	return nil, fmt.Errorf("%w for path /%s", ErrNotFound, strings.Join(path, "/"))
}

// ByID returns the composition with the given id.
func (s *Service) ByID(ctx context.Context, id string, opts Options) (*canvas.ComponentInstance, error) {
	state := canvas.StateFor(opts.Preview)
	logger := s.logger.With(
		zap.String("load_id", uuid.NewString()),
		zap.String("composition_id", id),
		zap.Stringer("state", state),
		zap.Bool("refresh", opts.Refresh),
	)
	comp, err := s.client.CompositionByID(ctx, id, state)
	if err != nil {
		logger.Error("fetch composition by id failed", zap.Error(err))
		return nil, fmt.Errorf("fetch composition %s: %w", id, err)
	}
	if comp == nil {
		logger.Warn("composition id returned no composition")
		return nil, fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	logger.Info("composition loaded", zap.String("type", comp.Type), zap.Int("nodes", comp.Count()))
	return comp, nil
}

// Compositions returns every published composition.
func (s *Service) Compositions(ctx context.Context) ([]canvas.ListEntry, error) {
	entries, err := s.client.CompositionList(ctx, canvas.StatePublished)
	if err != nil {
		s.logger.Error("fetch composition list failed", zap.Error(err))
		return nil, fmt.Errorf("list compositions: %w", err)
	}
	for _, e := range entries {
		s.logger.Debug("composition",
			zap.String("id", e.Composition.ID),
			zap.String("type", e.Composition.Type),
			zap.String("slug", e.Composition.Slug),
			zap.Stringer("state", e.State),
		)
	}
	return entries, nil
}

// Routes returns the route of every composition that has one.
func (s *Service) Routes(ctx context.Context) ([]string, error) {
	entries, err := s.Compositions(ctx)
	if err != nil {
		return nil, err
	}
	routes := make([]string, 0, len(entries))
	for _, e := range entries {
		if route := e.Route(); route != "" {
			routes = append(routes, route)
		}
	}
	s.logger.Debug("routes found", zap.Int("count", len(routes)))
	return routes, nil
}
