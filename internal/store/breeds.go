package store

import (
	"context"
	"fmt"
	"sync"

	"mockydog/breeds/internal/client"
	"mockydog/breeds/internal/domain"
	"mockydog/breeds/internal/observable"

	log "github.com/sirupsen/logrus"
)

// Scheduler runs the store's one-shot fetch task.
type Scheduler interface {
	Go(task func())
}

// SchedulerFunc adapts a plain func to Scheduler.
type SchedulerFunc func(task func())

func (f SchedulerFunc) Go(task func()) { f(task) }

// Dispatcher moves a completed fetch result onto the context observers expect
// to be notified on.
type Dispatcher func(apply func())

type Option func(*options)

type options struct {
	scheduler  Scheduler
	dispatcher Dispatcher
}

// WithScheduler replaces the default goroutine scheduler.
func WithScheduler(s Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithDispatcher replaces the default inline dispatcher.
func WithDispatcher(d Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// BreedStore owns the breed collection. It fetches exactly once, when created,
// and never surfaces fetch errors to its consumers.
type BreedStore struct {
	breeds     *observable.Value[[]domain.Breed]
	ctx        context.Context
	cancel     context.CancelFunc
	dispatcher Dispatcher
	done       chan struct{}
	doneOnce   sync.Once
}

var _ observable.ReadOnly[[]domain.Breed] = (*BreedStore)(nil)

// New creates an empty store and schedules its only fetch.
// The fetch is cancelled when ctx is done or Close is called.
func New(ctx context.Context, breedClient client.BreedClient, opts ...Option) *BreedStore {
	o := options{
		scheduler:  SchedulerFunc(func(task func()) { go task() }),
		dispatcher: func(apply func()) { apply() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &BreedStore{
		breeds:     observable.New([]domain.Breed{}),
		ctx:        ctx,
		cancel:     cancel,
		dispatcher: o.dispatcher,
		done:       make(chan struct{}),
	}

	o.scheduler.Go(func() { s.fetch(breedClient) })

	return s
}

func (s *BreedStore) fetch(breedClient client.BreedClient) {
	defer func() {
		if r := recover(); r != nil {
			log.WithError(fmt.Errorf("panic: %v", r)).Error("❌ Breed fetch panicked, keeping current list")
			s.finish()
		}
	}()

	breeds, err := breedClient.FetchBreeds(s.ctx)
	if err != nil {
		log.WithError(err).Warn("⚠️ Failed to fetch dog breeds, keeping current list")
		s.finish()
		return
	}

	if s.ctx.Err() != nil {
		log.Debug("Store closed before breeds arrived, dropping result")
		s.finish()
		return
	}

	breeds = domain.CloneBreeds(breeds)
	s.dispatcher(func() {
		defer s.finish()
		if s.ctx.Err() != nil {
			return
		}
		s.breeds.Set(breeds)
		log.Infof("✅ Loaded %d dog breeds", len(breeds))
	})
}

func (s *BreedStore) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

// Get returns a copy of the current collection. It is empty until the fetch succeeds.
func (s *BreedStore) Get() []domain.Breed {
	return domain.CloneBreeds(s.breeds.Get())
}

// Subscribe calls fn with the current collection and again when the fetch succeeds.
// Subscribing never triggers a fetch.
func (s *BreedStore) Subscribe(fn func([]domain.Breed)) (cancel func()) {
	return s.breeds.Subscribe(func(b []domain.Breed) {
		fn(domain.CloneBreeds(b))
	})
}

// Done is closed once the fetch has finished and its result, if any, was applied.
func (s *BreedStore) Done() <-chan struct{} {
	return s.done
}

// Close cancels a fetch still in flight. Safe to call more than once.
func (s *BreedStore) Close() {
	s.cancel()
}
