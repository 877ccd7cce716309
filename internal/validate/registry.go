// Package validate provides commit message validation for scribe.
// This file implements the validator registry.
package validate

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	scribeerrors "github.com/mrz1836/scribe/internal/errors"
)

// Registry maps validator names to validators.
// It is an explicitly constructed dependency, not process-wide state:
// callers build one, register validators, and pass it to the orchestrator.
// It provides thread-safe registration and lookup.
type Registry struct {
	mu         sync.RWMutex
	validators map[string]Validator
	logger     zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used for overwrite warnings.
func WithRegistryLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a new empty validator registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		validators: make(map[string]Validator),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a validator under its own name.
// Registering over an existing name replaces the validator and logs a warning.
func (r *Registry) Register(v Validator) error {
	if v == nil {
		return scribeerrors.ErrValidatorNil
	}
	name := v.Name()
	if name == "" {
		return fmt.Errorf("%w: validator name", scribeerrors.ErrEmptyValue)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.validators[name]; exists {
		r.logger.Warn().Str("validator", name).Msg("overwriting registered validator")
	}
	r.validators[name] = v
	return nil
}

// Get retrieves the validator registered under name.
// Returns ErrValidatorNotFound if no validator is registered for the name.
func (r *Registry) Get(name string) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.validators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", scribeerrors.ErrValidatorNotFound, name)
	}
	return v, nil
}

// Names returns all registered validator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.validators))
	for name := range r.validators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
