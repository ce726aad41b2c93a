// Package cluster defines options, policies, result types and sentinel
// errors for the grid cluster indexer.
package cluster

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/clusterfield/gridgraph"
)

// Sentinel errors for Index and Keeper.Validate.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("cluster: grid is nil")

	// ErrNilCandidates is returned if a nil candidate set is passed.
	ErrNilCandidates = errors.New("cluster: candidates are nil")

	// ErrCandidateMismatch is returned when the candidate set does not describe the grid.
	ErrCandidateMismatch = errors.New("cluster: candidates do not match grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cluster: invalid option supplied")

	// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
	ErrUnknownPolicy = errors.New("cluster: unknown policy")

	// ErrOverlap reports a coordinate listed in more than one cluster (or twice in one).
	ErrOverlap = errors.New("cluster: coordinate assigned more than once")

	// ErrLabelMismatch reports a cluster member whose grid label is not the cluster id.
	ErrLabelMismatch = errors.New("cluster: grid label differs from cluster id")

	// ErrLabelCollision reports grid cells carrying a cluster id they are not members of.
	ErrLabelCollision = errors.New("cluster: label used outside its cluster")

	// ErrUnlabeledCell reports an occupied cell left without a cluster.
	ErrUnlabeledCell = errors.New("cluster: occupied cell left unlabeled")
)

// Policy decides which neighbour labels may join the cluster being grown.
type Policy int

const (
	// StrictPartition accepts only Unlabeled cells. Pre-assigned labels are walls.
	StrictPartition Policy = iota
	// MergeOnContact accepts any nonzero label other than the current id,
	// absorbing pre-labeled regions that touch the cluster.
	MergeOnContact
)

// policyNames maps each Policy to its configuration name.
var policyNames = map[Policy]string{
	StrictPartition: "strict",
	MergeOnContact:  "merge",
}

// String returns "strict" or "merge".
func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "strict" or "merge" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return p, nil
		}
	}
	return StrictPartition, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// accepts reports whether a neighbour currently labeled label may join cluster id.
func (p Policy) accepts(label, id int) bool {
	if p == MergeOnContact {
		return label != gridgraph.Empty && label != id
	}
	return label == gridgraph.Unlabeled
}

func (p Policy) valid() bool {
	_, ok := policyNames[p]
	return ok
}

// Option configures Index behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when Index runs.
type Option func(*Options)

// Options holds parameters and callbacks that customize Index.
type Options struct {
	// Policy selects which labels may join a growing cluster.
	Policy Policy

	// Conn selects 4- or 8-neighbour growth.
	Conn gridgraph.Connectivity

	// OnVisit is called each time a cell receives cluster label id,
	// starting with the seed.
	OnVisit func(c gridgraph.Coordinate, id int)

	// OnCluster is called once per cluster, after its stack has drained.
	OnCluster func(c Cluster)

	// Logger receives debug traces of the run.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StrictPartition policy
//   - Conn4 connectivity
//   - no-op hooks
//   - a no-op logger
func DefaultOptions() Options {
	return Options{
		Policy:    StrictPartition,
		Conn:      gridgraph.Conn4,
		OnVisit:   func(gridgraph.Coordinate, int) {},
		OnCluster: func(Cluster) {},
		Logger:    zap.NewNop(),
	}
}

// WithPolicy selects the label-collision policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if !p.valid() {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, p)
			return
		}
		o.Policy = p
	}
}

// WithConnectivity selects Conn4 (default) or Conn8 growth.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		if conn != gridgraph.Conn4 && conn != gridgraph.Conn8 {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, conn)
			return
		}
		o.Conn = conn
	}
}

// WithOnVisit registers a callback run whenever a cell is labeled.
func WithOnVisit(fn func(c gridgraph.Coordinate, id int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnCluster registers a callback run when a cluster is complete.
func WithOnCluster(fn func(c Cluster)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCluster = fn
		}
	}
}

// WithLogger routes debug traces to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Cluster is one maximal group of cells sharing a label, in discovery order.
type Cluster struct {
	id     int
	points []gridgraph.Coordinate
}

// ID returns the grid label of the cluster (≥ gridgraph.FirstClusterID).
func (c Cluster) ID() int {
	return c.id
}

// Len returns the number of cells in the cluster.
func (c Cluster) Len() int {
	return len(c.points)
}

// Seed returns the cell the cluster grew from.
func (c Cluster) Seed() gridgraph.Coordinate {
	return c.points[0]
}

// Points returns a copy of the members in discovery order.
func (c Cluster) Points() []gridgraph.Coordinate {
	out := make([]gridgraph.Coordinate, len(c.points))
	copy(out, c.points)
	return out
}

// clone returns a Cluster that shares no memory with c.
func (c Cluster) clone() Cluster {
	return Cluster{id: c.id, points: c.Points()}
}

// Keeper is the ordered result of Index: Keeper[k] was created k-th and
// carries label k + gridgraph.FirstClusterID.
type Keeper []Cluster
