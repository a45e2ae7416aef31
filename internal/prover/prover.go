// Package prover drives the given-clause saturation loop over the inference
// core: pop the best pending clause, integrate it against the processed set
// (all resolvents plus all factors), evaluate the children and push them
// back onto the frontier.
//
// The loop is strictly single-threaded and deterministic for a fixed input
// and config: clause selection depends only on evaluations and heap
// mechanics, and the processed set keeps insertion order.
package prover

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/saturn-prover/saturn/internal/clause"
	"github.com/saturn-prover/saturn/internal/control"
	"github.com/saturn-prover/saturn/internal/subst"
)

// Result is the outcome of a saturation run.
type Result string

const (
	// ResultProof means the empty clause was derived: the input is
	// unsatisfiable.
	ResultProof Result = "proof"

	// ResultSaturated means the frontier ran dry without deriving the empty
	// clause: the input is satisfiable under this calculus.
	ResultSaturated Result = "saturated"

	// ResultUnknown means the iteration quota ran out first.
	ResultUnknown Result = "unknown"
)

// Report summarizes a saturation run.
type Report struct {
	// RunID uniquely identifies this run in logs and JSON output.
	RunID string `json:"run_id"`

	Result Result `json:"result"`

	// Iterations counts given-clause selections.
	Iterations int `json:"iterations"`

	// Generated counts clauses produced by resolution and factoring.
	Generated int `json:"generated"`

	// Processed is the size of the processed set at the end of the run.
	Processed int `json:"processed"`

	// Pending is the size of the frontier at the end of the run.
	Pending int `json:"pending"`
}

// Prover holds the proof state: the processed clause set and the pending
// frontier. Not safe for concurrent use.
type Prover struct {
	cfg       Config
	processed *clause.Set
	pending   control.Queue[*clause.Clause, int]
	renamer   subst.Renamer
	generated int
	selected  int
	nameSeq   int
}

// New creates a prover with an empty proof state.
func New(cfg Config) *Prover {
	return &Prover{cfg: cfg, processed: clause.NewSet()}
}

// AddClause puts a clause on the frontier, evaluated by symbol weight. The
// auxiliary payload is the clause's generation number, a logical clock that
// records arrival order; the queue returns it untouched.
func (p *Prover) AddClause(c *clause.Clause) {
	p.generated++
	if c.Name == "" {
		p.nameSeq++
		c.Name = fmt.Sprintf("c%d", p.nameSeq)
	}
	p.pending.Insert(c, p.generated, c.Weight(p.cfg.FunctionWeight, p.cfg.VariableWeight))
}

// Saturate runs the given-clause loop to completion (or to the iteration
// quota) and returns a report.
func (p *Prover) Saturate() *Report {
	report := &Report{RunID: uuid.NewString(), Result: ResultUnknown}
	for {
		if p.cfg.MaxIterations > 0 && p.selected >= p.cfg.MaxIterations {
			report.Result = ResultUnknown
			break
		}
		given, _, ok := p.pending.GetBest()
		if !ok {
			report.Result = ResultSaturated
			break
		}
		p.selected++
		if given.IsEmpty() {
			report.Result = ResultProof
			break
		}
		children := p.processGiven(given)
		report.Generated += len(children)
		for _, child := range children {
			p.AddClause(child)
		}
	}
	report.Iterations = p.selected
	report.Processed = p.processed.Len()
	report.Pending = p.pending.Len()
	return report
}

// processGiven integrates one selected clause: renames it apart, computes
// all resolvents against the processed set plus all direct factors, and then
// adds the given clause to the processed set. Resolution runs before the add
// so the given clause never meets its own literals; every resolution partner
// was renamed apart in an earlier iteration, keeping the parents
// variable-disjoint.
func (p *Prover) processGiven(given *clause.Clause) []*clause.Clause {
	given = given.FreshVarCopy(&p.renamer)
	children := control.AllResolvents(given, p.processed)
	children = append(children, control.AllFactors(given)...)
	p.processed.Add(given)
	return children
}
