// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Network options (allocator, logger, frontier, link policy, checks) and link options.

package mesh

import (
	"fmt"
	"log/slog"
	"strings"
)

// FrontierKind selects the open-set structure used by FindPath.
type FrontierKind int

const (
	// FrontierList scans a worklist in full every iteration.
	FrontierList FrontierKind = iota

	// FrontierOrdered keeps open elements in a B-tree ordered on
	// (estimated total cost, most recently opened first).
	FrontierOrdered
)

// String returns "list" or "ordered".
func (k FrontierKind) String() string {
	switch k {
	case FrontierList:
		return "list"
	case FrontierOrdered:
		return "ordered"
	}

	return fmt.Sprintf("FrontierKind(%d)", int(k))
}

// ParseFrontier maps "list" / "ordered" (case-insensitive) to a FrontierKind.
func ParseFrontier(s string) (FrontierKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "list":
		return FrontierList, nil
	case "ordered":
		return FrontierOrdered, nil
	}

	return FrontierList, fmt.Errorf("mesh: unknown frontier %q", s)
}

// settings holds construction-time configuration of a Network.
type settings struct {
	ids         *IDAllocator
	logger      *slog.Logger
	frontier    FrontierKind
	uniqueLinks bool
	strict      bool
	typeName    string
}

func defaultSettings() settings {
	return settings{
		logger:   slog.New(slog.DiscardHandler),
		frontier: FrontierList,
		typeName: TypeMeshNetwork,
	}
}

// Option configures a Network at construction.
type Option func(*settings)

// WithAllocator makes the network use ids instead of a private allocator.
func WithAllocator(ids *IDAllocator) Option {
	return func(s *settings) { s.ids = ids }
}

// WithLogger routes precondition diagnostics to logger. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFrontier selects the open-set structure used by FindPath.
func WithFrontier(kind FrontierKind) Option {
	return func(s *settings) { s.frontier = kind }
}

// WithUniqueLinks rejects a second link with the same (source, dest) pair.
// By default parallel links are kept and the search relaxes each of them.
func WithUniqueLinks() Option {
	return func(s *settings) { s.uniqueLinks = true }
}

// WithStrictChecks panics on the first failed precondition instead of only
// logging it. Meant for development builds and tests.
func WithStrictChecks() Option {
	return func(s *settings) { s.strict = true }
}

// WithTypeName overrides the persisted type tag; specializations use it.
func WithTypeName(tag string) Option {
	return func(s *settings) {
		if tag != "" {
			s.typeName = tag
		}
	}
}

// LinkSpec is the resolved form of a LinkOption list.
type LinkSpec struct {
	Weight        float64
	HasWeight     bool
	Reverse       float64
	HasReverse    bool
	Bidirectional bool
}

// LinkOption tunes LinkNodes.
type LinkOption func(*LinkSpec)

// WithWeight sets the forward weight explicitly.
func WithWeight(w float64) LinkOption {
	return func(s *LinkSpec) { s.Weight, s.HasWeight = w, true }
}

// WithReverseWeight sets the weight of the reverse link and implies Bidirectional.
func WithReverseWeight(w float64) LinkOption {
	return func(s *LinkSpec) {
		s.Reverse, s.HasReverse = w, true
		s.Bidirectional = true
	}
}

// Bidirectional also creates the dest→source link.
func Bidirectional() LinkOption {
	return func(s *LinkSpec) { s.Bidirectional = true }
}

// ResolveLinkSpec applies opts to an empty LinkSpec.
func ResolveLinkSpec(opts ...LinkOption) LinkSpec {
	var s LinkSpec
	for _, opt := range opts {
		opt(&s)
	}

	return s
}
