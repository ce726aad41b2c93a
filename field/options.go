package field

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/clusterfield/builder"
	"github.com/katalvlaran/clusterfield/cluster"
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// Option configures Build and FromGrid.
type Option func(*config)

// config collects resolved options.
type config struct {
	seed      int64
	seeded    bool
	rng       *rand.Rand
	occupancy builder.BuilderOption
	policy    cluster.Policy
	conn      gridgraph.Connectivity
	logger    *zap.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		policy: cluster.StrictPartition,
		conn:   gridgraph.Conn4,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// builderOptions translates the generator-related options.
func (c config) builderOptions() []builder.BuilderOption {
	var out []builder.BuilderOption
	switch {
	case c.rng != nil:
		out = append(out, builder.WithRand(c.rng))
	case c.seeded:
		out = append(out, builder.WithSeed(c.seed))
	}
	if c.occupancy != nil {
		out = append(out, c.occupancy)
	}
	return out
}

// clusterOptions translates the indexer-related options; log carries the
// run's fields.
func (c config) clusterOptions(log *zap.Logger) []cluster.Option {
	return []cluster.Option{
		cluster.WithPolicy(c.policy),
		cluster.WithConnectivity(c.conn),
		cluster.WithLogger(log),
	}
}

// WithSeed seeds the grid generator for a reproducible field.
// It overrides an earlier WithRand.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.seeded, c.rng = seed, true, nil
	}
}

// WithRand supplies the generator's random source directly.
// Panics on nil. It overrides an earlier WithSeed.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("field: WithRand(nil)")
	}
	return func(c *config) {
		c.rng, c.seeded = r, false
	}
}

// WithOccupancy overrides builder.OccupancyProbability.
// Panics if p is outside [0,1].
func WithOccupancy(p float64) Option {
	opt := builder.WithOccupancy(p)
	return func(c *config) {
		c.occupancy = opt
	}
}

// WithPolicy selects the label-collision policy (default cluster.StrictPartition).
func WithPolicy(p cluster.Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithConnectivity selects 4- (default) or 8-neighbour clusters.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(c *config) {
		c.conn = conn
	}
}

// WithLogger routes build and indexing logs to l. Nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
