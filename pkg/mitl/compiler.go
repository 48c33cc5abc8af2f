// Package mitl compiles Signal Temporal Logic formulas over real-valued
// predicates into Metric Interval Temporal Logic formulas over Boolean
// propositions, partitioned into sub-intervals on which every
// proposition's observed truth value is stable.
package mitl

import (
	"fmt"

	"github.com/fmtools/mitlc/pkg/mitl/predicate"
	"github.com/fmtools/mitlc/pkg/mitl/rewrite"
	"github.com/fmtools/mitlc/pkg/mitl/signal"
)

// Result carries every intermediate artifact of one compilation run.
type Result struct {
	// Predicates are the extracted atomic comparisons, in order of
	// occurrence, duplicates included.
	Predicates []string
	// Mapping binds each predicate to its Boolean proposition.
	Mapping *predicate.Mapping
	// Trace is the sampled signal the partition was derived from.
	Trace signal.Trace
	// Points are the stable-partition cut times.
	Points []int
	// Renamed is the formula after predicate substitution, before
	// partitioning.
	Renamed string
	// Formula is the final partitioned MITL formula.
	Formula string
}

// Compiler runs the STL to MITL pipeline: extract, rename, sample,
// partition, rewrite. Each stage consumes the previous stage's output
// and produces a new immutable value; no stage can abort the run.
type Compiler struct {
	cfg     *signal.Config
	pattern rewrite.Pattern
	tracer  Tracer
	dedupe  bool
}

func New(options ...Option) (*Compiler, error) {
	c := Compiler{}
	for _, option := range append(options, defaults...) {
		if err := option(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

type Option func(c *Compiler) error

// WithSignalConfig sets the signal description the stable partition is
// derived from.
func WithSignalConfig(cfg *signal.Config) Option {
	return func(c *Compiler) error {
		if cfg == nil {
			return fmt.Errorf("signal config must not be nil")
		}
		c.cfg = cfg
		return nil
	}
}

// WithPattern sets the bounded temporal operator shape to partition.
func WithPattern(p rewrite.Pattern) Option {
	return func(c *Compiler) error {
		c.pattern = p
		return nil
	}
}

func WithTracer(t Tracer) Option {
	return func(c *Compiler) error {
		c.tracer = t
		return nil
	}
}

// WithDedupe controls whether textually identical predicates share one
// proposition (true) or burn one index per occurrence (false, the
// default).
func WithDedupe(dedupe bool) Option {
	return func(c *Compiler) error {
		c.dedupe = dedupe
		return nil
	}
}

var defaults = []Option{
	func(c *Compiler) error {
		if c.cfg == nil {
			c.cfg = signal.Default()
		}
		if c.pattern.Operator == "" {
			c.pattern = rewrite.Globally
		}
		if c.tracer == nil {
			c.tracer = DefaultTracer{}
		}
		return nil
	},
}

// Compile runs the full pipeline over one STL formula. Empty input
// degrades to empty stage outputs; a formula without the temporal
// pattern passes through the partitioner unchanged.
func (c *Compiler) Compile(stl string) *Result {
	predicates := predicate.Extract(stl)
	c.tracer.ExtractedPredicates(predicates)

	mapping := predicate.NewMapping(predicates, c.dedupe)
	c.tracer.MappedPredicates(mapping.Bindings())
	if len(mapping.Bindings()) != len(c.cfg.Predicates) {
		c.tracer.ArityMismatch(len(mapping.Bindings()), len(c.cfg.Predicates))
	}

	trace := c.cfg.Trace()
	c.tracer.SynthesizedTrace(trace)

	points := signal.PartitionPoints(trace)
	c.tracer.PartitionPoints(points)

	renamed := mapping.Apply(stl)
	c.tracer.RenamedFormula(stl, renamed)

	formula := c.pattern.Partition(renamed, points)
	c.tracer.PartitionedFormula(formula)

	return &Result{
		Predicates: predicates,
		Mapping:    mapping,
		Trace:      trace,
		Points:     points,
		Renamed:    renamed,
		Formula:    formula,
	}
}
