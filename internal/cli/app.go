// Package cli implements the interactive terminal client: a command loop
// over the listing engine, the bookmark store, and the image loader.
package cli

import (
	"context"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/randomusers/internal/bookmarks"
	"github.com/dmitrijs2005/randomusers/internal/config"
	"github.com/dmitrijs2005/randomusers/internal/imagecache"
	"github.com/dmitrijs2005/randomusers/internal/listing"
	"github.com/dmitrijs2005/randomusers/internal/logging"
	"github.com/dmitrijs2005/randomusers/internal/remote"
)

// App wires the application together and owns the REPL session.
type App struct {
	config *config.Config
	store  *bookmarks.Store
	engine *listing.Engine
	loader imagecache.Loader
	log    logging.Logger

	events   *printingListener
	bmToken  string
	teardown func()
}

// NewApp builds the full object graph from cfg.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := bookmarks.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "initializing bookmarks database", "dsn", cfg.DatabaseDSN, "error", err)
		return nil, err
	}

	repo := bookmarks.NewSQLiteRepository(db, log)
	store := bookmarks.NewStore(ctx, repo, log)

	source := remote.NewClient(cfg.BaseURL, cfg.RequestTimeout, log)

	events := &printingListener{out: os.Stdout}
	engine := listing.NewEngine(source, store, events, listing.Options{
		PageSize:           cfg.PageSize,
		PrefetchThreshold:  cfg.PrefetchThreshold,
		FreshSeedOnRefresh: cfg.FreshSeedOnRefresh,
	}, log)

	cache := imagecache.NewCache(0, 0) // defaults: 100 entries, 100 MB
	loader := imagecache.NewHTTPLoader(cache, cfg.RequestTimeout, log)

	app := &App{
		config: cfg,
		store:  store,
		engine: engine,
		loader: loader,
		log:    log,
		events: events,
	}

	// badge observer: any bookmark change re-renders the prompt badge,
	// re-reading the count from the store
	app.bmToken = store.Subscribe(func(bookmarks.Change) {
		app.events.BadgeChanged(store.Count())
	})

	app.teardown = func() {
		store.Unsubscribe(app.bmToken)
		engine.Close()
		_ = db.Close()
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.teardown()
	a.Root(ctx)
}
