package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/uniterm/internal/canvas"
	"github.com/five82/uniterm/internal/config"
	"github.com/five82/uniterm/internal/fetch"
	"github.com/five82/uniterm/internal/logging"
	"github.com/five82/uniterm/internal/nav"
	"github.com/five82/uniterm/internal/prefs"
	"github.com/five82/uniterm/internal/render"
	"github.com/five82/uniterm/internal/state"
	"github.com/five82/uniterm/internal/ui"
)

// Options configure the uniterm application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/uniterm/prefs.toml
	PollEvery  int    // seconds; zero uses default
	Preview    bool

	// Path opens the composition at these route segments. Empty reopens the
	// last composition, or the root.
	Path []string
	// CompositionID opens a composition by id instead of by route.
	CompositionID string
	Verbose       bool
}

// Run boots the uniterm TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogPath(), Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync(logger)

	service, err := NewService(cfg, logger)
	if err != nil {
		return err
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	pollCtx, stopPoller := context.WithCancel(ctx)
	done := StartPoller(pollCtx, store, service, interval, logger)
	defer func() {
		stopPoller()
		<-done
	}()

	link := StartLink(opts, userPrefs.LastLink)
	logger.Info("starting ui",
		zap.String("link", link),
		zap.Bool("preview", cfg.Preview || opts.Preview),
		zap.Duration("poll", interval),
	)

	return ui.Run(ui.Options{
		Context:   ctx,
		Loader:    service,
		Walker:    render.NewWalker(nil, render.WithLogger(logger)),
		Store:     store,
		Logger:    logger,
		StartLink: link,
		Preview:   cfg.Preview || opts.Preview,
		LogPath:   cfg.LogPath(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// NewService builds the composition service for cfg. Missing credentials
// are logged but not fatal; the API rejects the requests and screens show
// the error.
func NewService(cfg config.Config, logger *zap.Logger) (*fetch.Service, error) {
	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		logger.Warn("uniform credentials missing; requests will fail",
			zap.Strings("missing", missing),
			zap.String("hint", "set them in the config file or UNIFORM_* environment variables"),
		)
	}

	client, err := canvas.NewClient(canvas.Options{
		APIKey:    cfg.APIKey,
		ProjectID: cfg.ProjectID,
		APIHost:   cfg.APIHost,
	})
	if err != nil {
		return nil, fmt.Errorf("init canvas client: %w", err)
	}
	return fetch.NewService(client, logger), nil
}

// StartLink picks the first screen: a composition id, then the path
// arguments, then the last opened composition. Empty means the root.
func StartLink(opts Options, lastLink string) string {
	if id := strings.TrimSpace(opts.CompositionID); id != "" {
		return nav.Route{Kind: nav.KindComposition, CompositionID: id}.Link()
	}
	var segments []string
	for _, arg := range opts.Path {
		segments = append(segments, nav.Segments(arg)...)
	}
	if len(segments) > 0 {
		return nav.CompositionLink(segments)
	}
	return strings.TrimSpace(lastLink)
}
