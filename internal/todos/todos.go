// Package todos owns the in-memory todo list and mirrors every change to a
// durable slot.
//
// Storage failures never reach the caller as a changed outcome: a failed read
// keeps (or seeds) the list, a failed write keeps the in-memory change. Both
// are logged. Load and Persist still return what they logged, for callers
// that want to report it.
package todos

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/seed"
	"github.com/idilsaglam/todo/internal/store"
)

// Store is the only thing allowed to mutate the list.
type Store struct {
	slot   store.Slot
	key    string
	logger *log.Logger
	seed   func() []model.Todo

	mu     sync.Mutex
	todos  []model.Todo
	loaded bool
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides store.DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithSeed replaces the seed dataset.
func WithSeed(fn func() []model.Todo) Option {
	return func(s *Store) { s.seed = fn }
}

func New(slot store.Slot, opts ...Option) *Store {
	s := &Store{
		slot:   slot,
		key:    store.DefaultKey,
		logger: log.Default(),
		seed:   seed.Records,
		todos:  []model.Todo{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load replaces the list with the durable one, newest first. An absent or
// empty slot loads the seed, and so does a value that cannot be decoded.
// A failed read leaves the list untouched. A corrupt value stays in the
// slot until the first mutation writes over it.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.logger.Error("load todos", "key", s.key, "err", err)
		s.mu.Lock()
		s.loaded = true
		s.mu.Unlock()
		return fmt.Errorf("load: %w", err)
	}

	var (
		list    []model.Todo
		seeded  bool
		loadErr error
	)
	if ok && strings.TrimSpace(raw) != "" {
		list, err = model.Decode(raw)
		if err != nil {
			s.logger.Error("decode todos, using seed", "key", s.key, "err", err)
			loadErr = fmt.Errorf("load: %w", err)
			list = nil
		}
	}
	if len(list) == 0 {
		list = s.seed()
		seeded = true
	}
	model.SortNewestFirst(list)

	s.mu.Lock()
	s.todos = list
	s.loaded = true
	s.mu.Unlock()

	switch {
	case seeded && loadErr != nil:
		s.logger.Info("seeded todo list, corrupt value kept", "count", len(list))
	case seeded:
		s.logger.Info("seeded todo list", "count", len(list))
		// a value read back unchanged is not written again; seeds are
		if err := s.Persist(ctx); err != nil {
			loadErr = err
		}
	default:
		s.logger.Debug("loaded todos", "count", len(list))
	}
	return loadErr
}

// Persist writes the whole current list under the store key.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		s.logger.Debug("persist skipped before load")
		return nil
	}
	snapshot := model.Clone(s.todos)
	s.mu.Unlock()

	raw, err := model.Encode(snapshot)
	if err != nil {
		s.logger.Error("encode todos", "err", err)
		return fmt.Errorf("persist: %w", err)
	}
	if err := s.slot.Set(ctx, s.key, raw); err != nil {
		s.logger.Error("persist todos", "key", s.key, "err", err)
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}

// Add prepends a new pending record. Titles that are blank once trimmed are
// ignored; the stored title is the input capped to model.MaxTitleLen.
func (s *Store) Add(ctx context.Context, title string) (model.Todo, bool) {
	if !model.ValidTitle(title) {
		return model.Todo{}, false
	}
	s.mu.Lock()
	t := model.Todo{ID: model.NextID(s.todos), Title: model.CapTitle(title)}
	next := make([]model.Todo, 0, len(s.todos)+1)
	next = append(next, t)
	next = append(next, s.todos...)
	s.todos = next
	s.mu.Unlock()

	s.Persist(ctx)
	return t, true
}

// Toggle flips the completed flag of the record with id.
func (s *Store) Toggle(ctx context.Context, id int) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	next := model.Clone(s.todos)
	next[i].Completed = !next[i].Completed
	s.todos = next
	s.mu.Unlock()

	s.Persist(ctx)
	return true
}

// Remove deletes the record with id.
func (s *Store) Remove(ctx context.Context, id int) bool {
	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	next := make([]model.Todo, 0, len(s.todos)-1)
	next = append(next, s.todos[:i]...)
	next = append(next, s.todos[i+1:]...)
	s.todos = next
	s.mu.Unlock()

	s.Persist(ctx)
	return true
}

// Todos returns a copy of the list, newest first.
func (s *Store) Todos() []model.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Clone(s.todos)
}

// Get looks a record up by id.
func (s *Store) Get(id int) (model.Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return s.todos[i], true
	}
	return model.Todo{}, false
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Stats counts done and pending records.
func (s *Store) Stats() (done, pending int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.Stats(s.todos)
}

// index must be called with mu held.
func (s *Store) index(id int) int {
	for i, t := range s.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
