// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: builderConfig, functional options, Constructor and Build.
//
// Contract:
//   - Option constructors panic on meaningless values (programmer error).
//   - Constructors validate their own parameters and return sentinel errors
//     wrapped with their method tag; they never panic at runtime.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/idledeity/marsminingco-sub000/mesh"
	"github.com/idledeity/marsminingco-sub000/nav"
)

// Sentinel errors.
var (
	ErrTooFewNodes = errors.New("builder: parameter too small")
	ErrBadDegree   = errors.New("builder: neighbor count out of range")
)

// Defaults applied before options.
const (
	DefaultSpacing = 1.0
	DefaultExtent  = 100.0
	DefaultSeed    = 1
)

// builderConfig is the resolved option set handed to every Constructor.
type builderConfig struct {
	spacing   float64
	extent    float64
	diagonals bool
	rng       *rand.Rand // only Scatter draws from it
	netOpts   []mesh.Option
}

func newConfig(opts ...Option) builderConfig {
	cfg := builderConfig{spacing: DefaultSpacing, extent: DefaultExtent}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}

	return cfg
}

// Option customizes a build. Option constructors panic on meaningless input.
type Option func(*builderConfig)

// WithSpacing sets the distance between neighboring grid or path nodes.
func WithSpacing(d float64) Option {
	if !(d > 0) {
		panic("builder: WithSpacing requires d > 0")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithExtent sets the side of the square Scatter draws positions from.
func WithExtent(e float64) Option {
	if !(e > 0) {
		panic("builder: WithExtent requires e > 0")
	}
	return func(c *builderConfig) { c.extent = e }
}

// WithDiagonals also links diagonal grid neighbors.
func WithDiagonals() Option {
	return func(c *builderConfig) { c.diagonals = true }
}

// WithSeed makes stochastic constructors reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithNetworkOptions passes opts to nav.NewNetwork.
func WithNetworkOptions(opts ...mesh.Option) Option {
	return func(c *builderConfig) { c.netOpts = append(c.netOpts, opts...) }
}

// Constructor adds nodes and links to an empty network.
type Constructor func(net *nav.Network, cfg builderConfig) error

// Build runs ctor on a new network. On error the partial network is dropped.
func Build(ctor Constructor, opts ...Option) (*nav.Network, error) {
	// Options first: they carry the network options too.
	cfg := newConfig(opts...)
	net := nav.NewNetwork(cfg.netOpts...)
	if err := ctor(net, cfg); err != nil {
		return nil, err
	}

	return net, nil
}

// addAll adds one node per position, in order.
func addAll(net *nav.Network, method string, pts []r3.Vec) ([]mesh.NodeID, error) {
	ids := make([]mesh.NodeID, len(pts))
	for i, p := range pts {
		id, err := net.AddAt(p)
		if err != nil {
			return nil, fmt.Errorf("%s: add node %d: %w", method, i, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// link adds a bidirectional link a↔b weighted by distance.
func link(net *nav.Network, method string, a, b mesh.NodeID) error {
	if err := net.LinkNodes(a, b, mesh.Bidirectional()); err != nil {
		return fmt.Errorf("%s: link %d↔%d: %w", method, a, b, err)
	}

	return nil
}
