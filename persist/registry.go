// SPDX-License-Identifier: MIT
//
// File: registry.go
// Role: Tag → Factory registry used to reconstruct objects on load.

package persist

import (
	"fmt"
	"sort"
)

// Factory returns a fresh, empty instance ready to be filled by Serialize.
type Factory func() Object

// Registry maps type tags to factories. It is not safe for concurrent
// registration; register everything at startup.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register installs f under tag. Registering a tag twice fails with ErrDuplicateType.
func (r *Registry) Register(tag string, f Factory) error {
	if tag == "" || f == nil {
		return fmt.Errorf("%w: empty tag or nil factory", ErrNilObject)
	}
	if _, ok := r.factories[tag]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, tag)
	}
	r.factories[tag] = f

	return nil
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.factories[tag]
	return ok
}

// New builds an empty object for tag.
func (r *Registry) New(tag string) (Object, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}

	return f(), nil
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	out := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		out = append(out, tag)
	}
	sort.Strings(out)

	return out
}
