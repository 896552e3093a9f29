package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ib-77/composable/pkg/rop/step"
)

var (
	ErrUnknownKind   = errors.New("unknown step kind")
	ErrDuplicateKind = errors.New("step kind already registered")
)

// Factory creates a step from its definition parameters.
type Factory[T any] func(params map[string]any) (step.Step[T, T], error)

// Decorator wraps each built step, for instance with logging.
type Decorator[T any] func(label string, s step.Step[T, T]) step.Step[T, T]

type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

func New[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory under kind.
func (r *Registry[T]) Register(kind string, factory Factory[T]) error {
	if kind == "" || factory == nil {
		return fmt.Errorf("register %q: kind and factory are required", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	r.factories[kind] = factory
	return nil
}

// MustRegister is Register that panics on error, for use in init functions.
func (r *Registry[T]) MustRegister(kind string, factory Factory[T]) {
	if err := r.Register(kind, factory); err != nil {
		panic(err)
	}
}

// Factory returns the factory registered under kind.
func (r *Registry[T]) Factory(kind string) (Factory[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[kind]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return factory, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry[T]) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Build creates every step of def and chains them with step.Composed. All
// step errors are reported together.
func (r *Registry[T]) Build(def *Definition, decorators ...Decorator[T]) (step.Composition[T, T], error) {
	if def == nil {
		return step.Composition[T, T]{}, errors.New("nil definition")
	}

	steps := make([]step.Step[T, T], 0, len(def.Steps))
	var errs []error
	for i, sd := range def.Steps {
		factory, err := r.Factory(sd.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, sd.Label(), err))
			continue
		}
		s, err := factory(sd.Params)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i, sd.Label(), err))
			continue
		}
		for _, decorate := range decorators {
			s = decorate(sd.Label(), s)
		}
		steps = append(steps, s)
	}
	if len(errs) > 0 {
		return step.Composition[T, T]{}, fmt.Errorf("building %s: %w", def.Name, errors.Join(errs...))
	}

	c, err := step.Composed(steps...)
	if err != nil {
		return step.Composition[T, T]{}, fmt.Errorf("building %s: %w", def.Name, err)
	}
	return c, nil
}
