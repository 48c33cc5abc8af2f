package mitl

import (
	"fmt"
	"io"
	"strings"

	"github.com/fmtools/mitlc/pkg/mitl/predicate"
	"github.com/fmtools/mitlc/pkg/mitl/signal"
)

// Tracer observes each pipeline stage's output as soon as the stage
// completes. Stage outputs are observational only; a tracer cannot
// influence the run.
type Tracer interface {
	ExtractedPredicates(predicates []string)
	MappedPredicates(bindings []predicate.Binding)
	SynthesizedTrace(trace signal.Trace)
	PartitionPoints(points []int)
	RenamedFormula(stl, mitl string)
	PartitionedFormula(mitl string)
	ArityMismatch(extracted, monitored int)
}

// DefaultTracer discards everything.
type DefaultTracer struct{}

func (DefaultTracer) ExtractedPredicates(_ []string)         {}
func (DefaultTracer) MappedPredicates(_ []predicate.Binding) {}
func (DefaultTracer) SynthesizedTrace(_ signal.Trace)        {}
func (DefaultTracer) PartitionPoints(_ []int)                {}
func (DefaultTracer) RenamedFormula(_, _ string)             {}
func (DefaultTracer) PartitionedFormula(_ string)            {}
func (DefaultTracer) ArityMismatch(_, _ int)                 {}

// LoggingTracer reports every stage to Writer, one numbered step per
// stage.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) ExtractedPredicates(predicates []string) {
	fmt.Fprintf(t.Writer, "Step 1: Extracted atomic predicates:\n")
	for _, p := range predicates {
		fmt.Fprintf(t.Writer, "- %s\n", p)
	}
}

func (t LoggingTracer) MappedPredicates(bindings []predicate.Binding) {
	fmt.Fprintf(t.Writer, "\nStep 2: Mapped atomic predicates to Boolean propositions:\n")
	for _, b := range bindings {
		fmt.Fprintf(t.Writer, "- %s -> %s\n", b.Text, b.ID)
	}
}

func (t LoggingTracer) SynthesizedTrace(trace signal.Trace) {
	fmt.Fprintf(t.Writer, "\nStep 3: Synthesized signal behavior:\n")
	for _, s := range trace {
		values := make([]string, len(s.Values))
		for i, v := range s.Values {
			if v {
				values[i] = "1"
			} else {
				values[i] = "0"
			}
		}
		fmt.Fprintf(t.Writer, "t = %.4g, (%s)\n", s.T, strings.Join(values, ", "))
	}
}

func (t LoggingTracer) PartitionPoints(points []int) {
	fmt.Fprintf(t.Writer, "\nStep 4: Constructed stable partitions:\n")
	for _, p := range points {
		fmt.Fprintf(t.Writer, "Partition point: %d\n", p)
	}
}

func (t LoggingTracer) RenamedFormula(stl, mitl string) {
	fmt.Fprintf(t.Writer, "\nStep 5: Replaced atomic predicates in the STL formula:\n")
	fmt.Fprintf(t.Writer, "STL formula:  %s\n", stl)
	fmt.Fprintf(t.Writer, "MITL formula (before partitioning): %s\n", mitl)
}

func (t LoggingTracer) PartitionedFormula(mitl string) {
	fmt.Fprintf(t.Writer, "\nStep 6: Partitioned temporal operators in the MITL formula:\n")
	fmt.Fprintf(t.Writer, "MITL formula (after partitioning): %s\n", mitl)
}

func (t LoggingTracer) ArityMismatch(extracted, monitored int) {
	fmt.Fprintf(t.Writer, "warning: formula has %d predicates but the signal monitors %d\n", extracted, monitored)
}
