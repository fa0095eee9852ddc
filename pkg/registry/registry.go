package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/arthur-debert/richtext/pkg/errors"
)

// Registry maps names to items. Implementations are safe for concurrent use.
// Render registries key node renderers by node type and mark renderers by mark type.
type Registry[T any] interface {
	// Register fails with ErrAlreadyExists when name is taken.
	Register(name string, item T) error
	Set(name string, item T) error
	Get(name string) (T, error)
	Lookup(name string) (T, bool)
	Remove(name string) error
	// List returns the names in sorted order.
	List() []string
	Has(name string) bool
	Count() int
	// Each visits items in name order.
	Each(fn func(name string, item T))
}

type registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// New returns an empty Registry.
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

// FromMap builds a registry holding a copy of items.
func FromMap[T any](items map[string]T) Registry[T] {
	r := &registry[T]{items: maps.Clone(items)}
	if r.items == nil {
		r.items = make(map[string]T)
	}
	return r
}

// Clone returns an independent copy of reg. A nil registry clones to an empty one.
func Clone[T any](reg Registry[T]) Registry[T] {
	out := &registry[T]{items: make(map[string]T)}
	if reg == nil {
		return out
	}
	reg.Each(func(name string, item T) {
		out.items[name] = item
	})
	return out
}

// Merge returns a new registry with every entry of base, then every entry of
// overlay replacing base entries of the same name. Either side may be nil.
// Replacement is whole-item; nothing is composed.
func Merge[T any](base, overlay Registry[T]) Registry[T] {
	out := Clone(base).(*registry[T])
	if overlay == nil {
		return out
	}
	overlay.Each(func(name string, item T) {
		out.items[name] = item
	})
	return out
}

func emptyName() error {
	return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
}

func notFound(name string) error {
	return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).WithDetail("name", name)
}

func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return emptyName()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name).WithDetail("name", name)
	}
	r.items[name] = item
	return nil
}

func (r *registry[T]) Set(name string, item T) error {
	if name == "" {
		return emptyName()
	}
	r.mu.Lock()
	r.items[name] = item
	r.mu.Unlock()
	return nil
}

func (r *registry[T]) Get(name string) (T, error) {
	item, ok := r.Lookup(name)
	if !ok {
		return item, notFound(name)
	}
	return item, nil
}

func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	item, ok := r.items[name]
	r.mu.RUnlock()
	return item, ok
}

func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; !ok {
		return notFound(name)
	}
	delete(r.items, name)
	return nil
}

func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.items))
}

func (r *registry[T]) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Each works on a snapshot, so fn may call back into the registry.
func (r *registry[T]) Each(fn func(name string, item T)) {
	r.mu.RLock()
	items := maps.Clone(r.items)
	r.mu.RUnlock()

	for _, name := range slices.Sorted(maps.Keys(items)) {
		fn(name, items[name])
	}
}

// MustRegister is Register for init functions, where a clash is a programming error.
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet is Get for names that are known to be registered.
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
