package container

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"

	"mockydog/breeds/internal/client"
	"mockydog/breeds/internal/config"
	"mockydog/breeds/internal/store"
	"mockydog/breeds/internal/view"

	log "github.com/sirupsen/logrus"
)

// Screen selects what Run shows.
type Screen string

const (
	ScreenHome  Screen = "home"
	ScreenAbout Screen = "about"
)

// Container holds all initialized components
type Container struct {
	Config *config.Config
	Client client.BreedClient
	About  view.AboutInfo

	out   io.Writer
	mu    sync.Mutex
	store *store.BreedStore
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	if err := configureLogger(cfg.Log); err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Client: client.NewBreedClient(cfg.API),
		About: view.AboutInfo{
			Name:      cfg.App.Name,
			Version:   cfg.App.Version,
			SourceURL: cfg.API.BreedsURL(),
		},
		out: os.Stdout,
	}, nil
}

// SetOutput redirects rendered screens, stdout by default.
func (c *Container) SetOutput(w io.Writer) {
	c.out = w
}

// Run shows the requested screen. The home screen creates the store, waits
// for its single fetch to settle and renders whatever the store holds then.
func (c *Container) Run(ctx context.Context, screen Screen) error {
	switch screen {
	case ScreenAbout:
		return view.RenderAbout(c.out, c.About)
	case ScreenHome:
	default:
		return fmt.Errorf("unknown screen %q", screen)
	}

	breedStore := c.Store(ctx)
	home := view.NewHome(breedStore)
	defer home.Close()

	if err := home.Render(c.out); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-breedStore.Done():
			return nil
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Info("🛑 Interrupted before breeds arrived")
		return err
	}

	if len(home.Breeds()) == 0 {
		// Fetch failed; the list stays in its loading state.
		return nil
	}

	return home.Render(c.out)
}

// Store returns the breed store, creating it and starting its fetch on first use.
func (c *Container) Store(ctx context.Context) *store.BreedStore {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		c.store = store.New(ctx, c.Client)
	}
	return c.store
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		c.store.Close()
	}

	return nil
}

func configureLogger(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)

	return nil
}
