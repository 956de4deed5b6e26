// Package trace records the human-readable proof trace the CLI's
// --verbose flag surfaces: the original formula, its closed prenex form,
// the quantifier-free formula produced as each quantifier is eliminated,
// and the final verdict (SPEC_FULL.md's CLI section). Each step is also
// logged at debug level, mirroring the teacher's
// log.Debug(fmt.Sprintf(...)) idiom (pkg/cmd/util/schema_stacker.go), and
// can optionally be serialised as JSON via github.com/segmentio/encoding
// for the CLI's --trace-json sink.
package trace

import (
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"

	"github.com/gokiburi-labs/folprover/pkg/ast"
	"github.com/gokiburi-labs/folprover/pkg/printer"
)

// Step is a single recorded point in the proof: a named operation and the
// formula it produced, in the order the driver visited them.
type Step struct {
	Index     int    `json:"index"`
	Operation string `json:"operation"`
	Formula   string `json:"formula"`
}

// Trace accumulates Steps for a single IsTheorem call.
type Trace struct {
	steps []Step
}

// New returns an empty Trace.
func New() *Trace {
	return &Trace{}
}

// Record appends a step naming operation and rendering f with pkg/printer,
// and emits the same information at debug level.
func (t *Trace) Record(operation string, f ast.Formula) {
	rendered := printer.Formula(f)
	t.steps = append(t.steps, Step{Index: len(t.steps), Operation: operation, Formula: rendered})
	log.Debug(fmt.Sprintf("%s: %s", operation, rendered))
}

// RecordVerdict appends the final true/false verdict as a step.
func (t *Trace) RecordVerdict(verdict bool) {
	t.steps = append(t.steps, Step{
		Index:     len(t.steps),
		Operation: "verdict",
		Formula:   fmt.Sprintf("%t", verdict),
	})
	log.Debug(fmt.Sprintf("verdict: %t", verdict))
}

// Steps returns the recorded steps in order.
func (t *Trace) Steps() []Step {
	return t.steps
}

// WriteHuman writes the trace in the plain human-readable form the CLI's
// --verbose mode prints to stderr.
func (t *Trace) WriteHuman(w io.Writer) error {
	for _, s := range t.steps {
		if _, err := fmt.Fprintf(w, "[%d] %s: %s\n", s.Index, s.Operation, s.Formula); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes the trace as a JSON array of steps, for the CLI's
// --trace-json sink.
func (t *Trace) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(t.steps)
}
